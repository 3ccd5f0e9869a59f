package content

// Locale 是 static.json 里某个语言的全部静态文案
type Locale struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Nav      Nav      `json:"nav"`
	Overview Overview `json:"overview"`
	News     News     `json:"news"`
	Footer   string   `json:"footer"`
}

type Nav struct {
	Home     string `json:"home"`
	Projects string `json:"projects"`
	News     string `json:"news"`
	LangBtn  string `json:"lang_btn"`
}

type Overview struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// News.Items 每一项都是已经写好的 HTML 片段
type News struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Strings 以语言代码为键
type Strings map[string]Locale

// Catalog 是一次生成所需的全部输入
type Catalog struct {
	Projects []Project
	Strings  Strings

	// 原始文件内容的 sha256
	ProjectsHash string
	StringsHash  string
}
