package express

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/blimu-dev/tseo-gen/pkg/utils"
)

var pathParam = regexp.MustCompile(`\{(\w+)}`)

// expressPath converts the first {name} placeholder of an OpenAPI path into
// Express's :name syntax. Later placeholders are left as they are.
func expressPath(p string) string {
	loc := pathParam.FindStringSubmatchIndex(p)
	if loc == nil {
		return p
	}
	return p[:loc[0]] + ":" + p[loc[2]:loc[3]] + p[loc[1]:]
}

// tagNames holds every identifier derived from a tag
type tagNames struct {
	Tag      string
	Type     string // sanitized tag, the stem of every class name
	Delegate string // <Tag>APIDelegate
	Router   string // <Tag>Router
	Field    string // controller field holding the delegate
	Accessor string // controller get/set accessor
}

func namesFor(tag string) tagNames {
	typ := utils.TypeName(tag)
	return tagNames{
		Tag:      tag,
		Type:     typ,
		Delegate: typ + "APIDelegate",
		Router:   typ + "Router",
		Field:    utils.LowerFirst(typ) + "ApiDelegate",
		Accessor: utils.LowerFirst(typ) + "Delegate",
	}
}

// modelModule is the import path of a referenced model type
func modelModule(modelDir, typeName string) string {
	return modelDir + "/" + utils.LowerFirst(typeName)
}

// relativeImport returns the import path of dir "to" as seen from a module in
// dir "from". Both are relative to the same root.
func relativeImport(from, to string) string {
	rel, err := filepath.Rel(filepath.FromSlash(from), filepath.FromSlash(to))
	if err != nil {
		return path.Join("../..", filepath.ToSlash(to))
	}
	rel = filepath.ToSlash(rel)
	if rel == "." {
		return "."
	}
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return rel
	}
	return "./" + rel
}

// unitPath joins an output directory and a file name
func unitPath(dir, file string) string {
	return path.Join(filepath.ToSlash(dir), file)
}
