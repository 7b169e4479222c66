package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/violetpress/violetpress"
)

func delspace(r rune) rune {
	if unicode.In(r, unicode.Latin, unicode.Digit) {
		return r
	}
	return '_'
}

func main() {
	author := flag.String("author", "Webmaster", "Set the author name")
	title := flag.String("title", "New Page", "Set the title")
	dirname := flag.String("dirname", "", "Set the directory name")
	priority := flag.Int("priority", 0, "Set the priority")
	simulate := flag.Bool("n", false, "Only show the result")
	hidden := flag.Bool("hidden", false, "Hide the page")
	edit := flag.Bool("e", false, "Open $EDITOR on the new files")
	flag.Parse()

	meta := violetpress.Meta{
		Author:   *author,
		Title:    *title,
		Date:     violetpress.VPTime(time.Now()),
		Priority: *priority,
		Hidden:   *hidden,
	}

	if *dirname == "" {
		*dirname = time.Time(meta.Date).Format("2006-01-02_")
		*dirname += strings.Map(delspace, strings.ToLower(*title))
	}

	b, err := json.MarshalIndent(meta, "", "\t")
	if err != nil {
		panic(err)
	}

	if !*simulate {
		if err := os.Mkdir(*dirname, 0755); err != nil {
			panic(err)
		}

		metafile, err := os.Create(filepath.Join(*dirname, "meta.json"))
		if err != nil {
			panic(err)
		}
		defer metafile.Close()

		if _, err = metafile.Write(b); err != nil {
			panic(err)
		}

		articlefile, err := os.Create(filepath.Join(*dirname, "article.md"))
		if err != nil {
			panic(err)
		}
		defer articlefile.Close()
		if _, err := fmt.Fprintf(articlefile, "# %s\n", *title); err != nil {
			panic(err)
		}
	}
	fmt.Println(*dirname)
	fmt.Println(string(b))

	if *edit {
		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vim"
		}
		editorpath, err := exec.LookPath(editor)
		if err != nil {
			panic(err)
		}
		cmd := exec.Command(
			editorpath,
			filepath.Join(*dirname, "article.md"),
			filepath.Join(*dirname, "meta.json"))
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			fmt.Println(err)
		}
	}
}
