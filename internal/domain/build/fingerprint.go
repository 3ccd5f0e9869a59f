package build

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint 标识一次生成的全部输入；输入不变时 RunHash 不变
type Fingerprint struct {
	ProjectsHash string
	StringsHash  string
	ConfigHash   string
	TemplateHash string
	RunHash      string
}

func (f *Fingerprint) ComputeRunHash() {
	h := sha256.New()
	h.Write([]byte(f.ProjectsHash))
	h.Write([]byte(f.StringsHash))
	h.Write([]byte(f.ConfigHash))
	h.Write([]byte(f.TemplateHash))
	f.RunHash = hex.EncodeToString(h.Sum(nil))
}

// Artifact 是一个写出的文件
type Artifact struct {
	Path   string
	Size   int
	Digest string
}

func NewArtifact(path string, data []byte) Artifact {
	return Artifact{Path: path, Size: len(data), Digest: HashBytes(data)}
}

func HashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
