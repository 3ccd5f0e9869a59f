package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	"profilegen/internal/domain/build"
	domainerr "profilegen/internal/domain/errors"
)

var errEmptyInput = errors.New("empty input")

// readFile 读取并解码一个输入文件，.yaml/.yml 走 yaml.v3，其余按 JSON。
// 返回原始内容的哈希；失败统一包成 InputError。
func readFile(path string, v any) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", &domainerr.InputError{Path: path, Err: err}
	}
	if err := decode(path, raw, v); err != nil {
		return "", &domainerr.InputError{Path: path, Err: err}
	}
	return build.HashBytes(raw), nil
}

func decode(path string, raw []byte, v any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return errEmptyInput
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		// 先转成 JSON 再解码，这样 YAML 和 JSON 共用同一套字段规则
		var node yaml.Node
		if err := yaml.Unmarshal(raw, &node); err != nil {
			return err
		}
		doc, err := nodeValue(&node)
		if err != nil {
			return err
		}
		js, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		return json.Unmarshal(js, v)
	default:
		return json.Unmarshal(raw, v)
	}
}

// nodeValue 把 YAML 节点转成可以 json.Marshal 的值。
// 除了 bool 和 null，标量一律按原文保留成字符串：输入里没有数值字段，
// 而 2504.04840 这样的 id 按浮点解析会丢掉末尾的 0。
func nodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeValue(n.Content[0])
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeValue(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar", k.Line)
			}
			v, err := nodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[k.Value] = v
		}
		return out, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return nil, err
			}
			return b, nil
		default:
			return n.Value, nil
		}
	default:
		return nil, fmt.Errorf("line %d: unsupported yaml node", n.Line)
	}
}
