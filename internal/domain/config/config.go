package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
	domainerr "profilegen/internal/domain/errors"
)

type Config struct {
	Input  InputConfig  `yaml:"input" toml:"input"`
	Output OutputConfig `yaml:"output" toml:"output"`
	Site   SiteConfig   `yaml:"site" toml:"site"`
	Render RenderConfig `yaml:"render" toml:"render"`
	Readme ReadmeConfig `yaml:"readme" toml:"readme"`
}

type InputConfig struct {
	Projects string `yaml:"projects" toml:"projects"`
	Strings  string `yaml:"strings" toml:"strings"`
}

type OutputConfig struct {
	PublicDir string       `yaml:"public_dir" toml:"public_dir"`
	Readme    string       `yaml:"readme" toml:"readme"`
	Pages     []PageConfig `yaml:"pages" toml:"pages"`
}

// PageConfig 描述一个语言版本的 HTML 页面
type PageConfig struct {
	Lang    string `yaml:"lang" toml:"lang"`
	File    string `yaml:"file" toml:"file"`
	AltLink string `yaml:"alt_link" toml:"alt_link"`
}

type SiteConfig struct {
	OrgURL string `yaml:"org_url" toml:"org_url"`
}

type RenderConfig struct {
	DefaultStars bool   `yaml:"default_stars" toml:"default_stars"`
	TemplateDir  string `yaml:"template_dir" toml:"template_dir"`
}

type ReadmeConfig struct {
	Heading  string `yaml:"heading" toml:"heading"`
	Intro    string `yaml:"intro" toml:"intro"`
	NewsLang string `yaml:"news_lang" toml:"news_lang"`
	DescLang string `yaml:"desc_lang" toml:"desc_lang"`
}

func Default() Config {
	return Config{
		Input: InputConfig{
			Projects: filepath.Join("profile", "content.json"),
			Strings:  filepath.Join("profile", "static.json"),
		},
		Output: OutputConfig{
			PublicDir: ".",
			Readme:    filepath.Join("profile", "README.md"),
			Pages: []PageConfig{
				{Lang: "en", File: "index.html", AltLink: "index.zh.html"},
				{Lang: "zh", File: "index.zh.html", AltLink: "index.html"},
			},
		},
		Site: SiteConfig{
			OrgURL: "https://github.com/Fantasy-AMAP/",
		},
		Render: RenderConfig{
			DefaultStars: true,
		},
		Readme: ReadmeConfig{
			Heading: "Fantasy AIGC Family",
			Intro: "Fantasy AIGC Family is an open-source initiative exploring Human-centric AI, " +
				"World Modeling, and Human-World Interaction, aiming to bridge perception, " +
				"understanding, and generation in the real and digital worlds.",
			NewsLang: "en",
			DescLang: "en",
		},
	}
}

func (c Config) Validate() error {
	ve := domainerr.ValidationError{Source: "config"}

	if strings.TrimSpace(c.Input.Projects) == "" {
		ve.Add("input.projects", "must not be empty")
	}
	if strings.TrimSpace(c.Input.Strings) == "" {
		ve.Add("input.strings", "must not be empty")
	}
	if strings.TrimSpace(c.Output.Readme) == "" {
		ve.Add("output.readme", "must not be empty")
	}
	if len(c.Output.Pages) == 0 {
		ve.Add("output.pages", "must list at least one page")
	}

	langs := make(map[string]struct{}, len(c.Output.Pages))
	files := make(map[string]struct{}, len(c.Output.Pages))
	for i, p := range c.Output.Pages {
		field := fmt.Sprintf("output.pages[%d]", i)
		lang := strings.TrimSpace(p.Lang)
		if lang == "" {
			ve.Add(field+".lang", "must not be empty")
		} else if _, dup := langs[lang]; dup {
			ve.Addf(field+".lang", "duplicate language %q", lang)
		}
		langs[lang] = struct{}{}

		file := filepath.Clean(strings.TrimSpace(p.File))
		if strings.TrimSpace(p.File) == "" {
			ve.Add(field+".file", "must not be empty")
		} else if _, dup := files[file]; dup {
			ve.Addf(field+".file", "duplicate output file %q", p.File)
		}
		files[file] = struct{}{}
	}

	if org := strings.TrimSpace(c.Site.OrgURL); org != "" && !isValidAbsURL(org) {
		ve.Add("site.org_url", "must be a valid absolute URL")
	}

	if strings.TrimSpace(c.Readme.NewsLang) == "" {
		ve.Add("readme.news_lang", "must not be empty")
	}
	if strings.TrimSpace(c.Readme.DescLang) == "" {
		ve.Add("readme.desc_lang", "must not be empty")
	}

	if dir := strings.TrimSpace(c.Render.TemplateDir); dir != "" {
		if st, err := os.Stat(dir); err != nil || !st.IsDir() {
			ve.Add("render.template_dir", "must be an existing directory")
		}
	}

	return ve.Err()
}

func isValidAbsURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// Load 读取配置文件：写到的字段覆盖 Default，其他保留默认值。
// .toml 走 BurntSushi/toml，其余按 YAML 解析。
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := decode(path, data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil && os.IsNotExist(err) {
		cfg = Default()
		return cfg, cfg.Validate()
	}
	return cfg, err
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err := toml.Decode(string(data), cfg)
		return err
	default:
		return yaml.Unmarshal(data, cfg)
	}
}
