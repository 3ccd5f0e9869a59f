// Package badge 把项目的链接信息（发表、代码、模型仓库）渲染成 Markdown 或 HTML 徽章。
//
// Spec 是封闭的和类型，所有变体都在本包内定义；渲染函数对它做类型分支，
// Unknown 或 nil 落到 default 分支，渲染结果为空而不是报错。
package badge

import (
	"encoding/json"
	"strings"
)

type Kind string

const (
	KindPublish     Kind = "publish"
	KindProject     Kind = "project"
	KindArXiv       Kind = "arxiv"
	KindGitHub      Kind = "github"
	KindHuggingFace Kind = "huggingface"
	KindModelScope  Kind = "modelscope"
)

// Order 是一个项目内徽章的固定顺序，所有输出文档都一样
var Order = []Kind{
	KindPublish,
	KindProject,
	KindArXiv,
	KindGitHub,
	KindHuggingFace,
	KindModelScope,
}

// Spec 是项目的一个徽章条目
type Spec interface {
	Kind() Kind
	sealed()
}

type Project struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type ArXiv struct {
	ID string `json:"id"`
}

type Publish struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Publisher string `json:"publisher"`
}

type GitHub struct {
	Repo string `json:"repo"`
	// ID 是 Markdown 里的标签文字，为空时用 "Code"
	ID          string `json:"id"`
	Stars       *bool  `json:"stars"`
	NotFinished bool   `json:"not_finished"`
}

type HuggingFace struct {
	Repo    string `json:"repo"`
	Model   bool   `json:"model"`
	Space   bool   `json:"space"`
	Dataset bool   `json:"dataset"`
}

type ModelScope struct {
	Repo    string `json:"repo"`
	Model   bool   `json:"model"`
	Studio  bool   `json:"studio"`
	Dataset bool   `json:"dataset"`
}

// Unknown 表示不认识的徽章类型
type Unknown struct {
	Name string
}

func (Project) Kind() Kind     { return KindProject }
func (ArXiv) Kind() Kind       { return KindArXiv }
func (Publish) Kind() Kind     { return KindPublish }
func (GitHub) Kind() Kind      { return KindGitHub }
func (HuggingFace) Kind() Kind { return KindHuggingFace }
func (ModelScope) Kind() Kind  { return KindModelScope }
func (u Unknown) Kind() Kind   { return Kind(u.Name) }

func (Project) sealed()     {}
func (ArXiv) sealed()       {}
func (Publish) sealed()     {}
func (GitHub) sealed()      {}
func (HuggingFace) sealed() {}
func (ModelScope) sealed()  {}
func (Unknown) sealed()     {}

// ShowStars 判断是否显示 star 数；没写 stars 时用配置的默认值 def
func (g GitHub) ShowStars(def bool) bool {
	if g.NotFinished {
		return false
	}
	if g.Stars != nil {
		return *g.Stars
	}
	return def
}

// IsKnown 判断 name（不区分大小写）是否是 Order 里的某一种
func IsKnown(name string) bool {
	k := Kind(strings.ToLower(name))
	for _, o := range Order {
		if o == k {
			return true
		}
	}
	return false
}

// Decode 根据 kind 把 JSON 字段解成对应的 Spec。不认识的 kind 返回 Unknown，不报错。
func Decode(kind string, raw []byte) (Spec, error) {
	var (
		spec Spec
		err  error
	)
	switch Kind(strings.ToLower(kind)) {
	case KindProject:
		var v Project
		err = unmarshal(raw, &v)
		spec = v
	case KindArXiv:
		var v ArXiv
		err = unmarshal(raw, &v)
		spec = v
	case KindPublish:
		var v Publish
		err = unmarshal(raw, &v)
		spec = v
	case KindGitHub:
		var v GitHub
		err = unmarshal(raw, &v)
		spec = v
	case KindHuggingFace:
		var v HuggingFace
		err = unmarshal(raw, &v)
		spec = v
	case KindModelScope:
		var v ModelScope
		err = unmarshal(raw, &v)
		spec = v
	default:
		return Unknown{Name: kind}, nil
	}
	if err != nil {
		return nil, err
	}
	return spec, nil
}

func unmarshal(raw []byte, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, v)
}
