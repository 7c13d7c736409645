package main

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/glyphwise/textprep/fontbook"
	"github.com/glyphwise/textprep/sanitize"
	"github.com/glyphwise/textprep/script"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runReplCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	applyTraceLevel(flags["trace"])
	book := mustOpenBook(args["manifest"].Value, false)
	repl, err := readline.New("textprep > ")
	if err != nil {
		fatalf("cannot set up line editor: %v", err)
	}
	defer repl.Close()
	pterm.Info.Println("Type text to prepare it; :families, :verify, :quit for commands")
	pterm.Info.Println("Quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			pterm.Error.Println(err)
			break
		}
		if stop := dispatch(book, strings.TrimSpace(line)); stop {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// dispatch handles one REPL line; returns true to leave the loop.
func dispatch(book *fontbook.Book, line string) bool {
	switch {
	case line == "":
		return false
	case line == ":quit" || line == ":q":
		return true
	case line == ":families":
		printFamilies(book)
		return false
	case line == ":verify":
		report := book.VerifyAll()
		printReport(report)
		return false
	case strings.HasPrefix(line, ":"):
		pterm.Error.Printf("unknown command %s\n", line)
		return false
	}
	res := sanitize.Sanitize(line, sanitize.WithItemID("repl"))
	scripts := script.Detect(res.Text)
	family := book.SelectFont(scripts)
	printPrepared(res, scripts, family)
	return false
}
