package content

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"profilegen/internal/badge"
)

const introPrefix = "intro_"

var projectKeys = map[string]struct{}{
	"id":        {},
	"title":     {},
	"intro":     {},
	"video_url": {},
}

// Project 对应 content.json 里的一条记录
type Project struct {
	ID       string
	Title    string
	Intro    string
	VideoURL string

	// 语言 -> 介绍，来自 intro_<lang> 字段
	IntroLocalized map[string]string

	// 按 badge.Order 排好序，与源文件里的字段顺序无关
	Badges []badge.Spec

	// 既不是项目字段也不是已知徽章的键，按字母排序
	UnknownKeys []string
}

// Description 返回 lang 对应的介绍，没有就回退到 intro
func (p Project) Description(lang string) string {
	if s, ok := p.IntroLocalized[lang]; ok && strings.TrimSpace(s) != "" {
		return s
	}
	return p.Intro
}

func (p *Project) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fields := []struct {
		key string
		dst *string
	}{
		{"id", &p.ID},
		{"title", &p.Title},
		{"intro", &p.Intro},
		{"video_url", &p.VideoURL},
	}
	for _, f := range fields {
		v, ok := raw[f.key]
		if !ok || string(v) == "null" {
			continue
		}
		if err := json.Unmarshal(v, f.dst); err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
	}

	for key, v := range raw {
		lang, ok := strings.CutPrefix(key, introPrefix)
		if !ok || lang == "" {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if p.IntroLocalized == nil {
			p.IntroLocalized = make(map[string]string)
		}
		p.IntroLocalized[lang] = s
	}

	specs := make(map[badge.Kind]badge.Spec)
	p.UnknownKeys = p.UnknownKeys[:0]
	for key, v := range raw {
		if _, ok := projectKeys[key]; ok || strings.HasPrefix(key, introPrefix) {
			continue
		}
		if !badge.IsKnown(key) {
			p.UnknownKeys = append(p.UnknownKeys, key)
			continue
		}
		spec, err := badge.Decode(key, v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if _, dup := specs[spec.Kind()]; dup {
			return fmt.Errorf("%s: badge %q given more than once", key, spec.Kind())
		}
		specs[spec.Kind()] = spec
	}
	sort.Strings(p.UnknownKeys)

	p.Badges = p.Badges[:0]
	for _, kind := range badge.Order {
		if spec, ok := specs[kind]; ok {
			p.Badges = append(p.Badges, spec)
		}
	}
	return nil
}

func (p *Project) Normalize() {
	p.ID = strings.TrimSpace(p.ID)
	p.Title = strings.TrimSpace(p.Title)
	p.VideoURL = strings.TrimSpace(p.VideoURL)
}
