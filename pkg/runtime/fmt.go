package runtime

import (
	"io"
	"log"
	"os"

	"github.com/bazelbuild/buildtools/build"
	"github.com/bazelbuild/buildtools/convertast"
	"go.starlark.net/syntax"
)

// Format standardizes a Starlark configuration file,
// rewriting it in place when write is set or printing it to w otherwise
func Format(starfile string, write bool, w io.Writer) (err error) {
	var fi os.FileInfo
	if fi, err = os.Stat(starfile); err != nil {
		log.Println("[ERR]", err)
		return
	}

	var ast *syntax.File
	if ast, err = syntax.Parse(starfile, nil, syntax.RetainComments); err != nil {
		log.Println("[ERR]", err)
		return
	}
	formatted := build.FormatString(convertast.ConvFile(ast))

	if !write {
		_, err = io.WriteString(w, formatted)
		return
	}
	if err = os.WriteFile(starfile, []byte(formatted), fi.Mode().Perm()); err != nil {
		log.Println("[ERR]", err)
		return
	}
	log.Println("[NFO] formatted", starfile)
	return
}
