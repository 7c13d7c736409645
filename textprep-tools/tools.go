// Command textprep-tools verifies and inspects font manifests for the
// text-preparation engine, independently of any document request.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/glyphwise/textprep/fontbook"
	"github.com/glyphwise/textprep/sanitize"
	"github.com/glyphwise/textprep/script"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'textprep.tools'
func tracer() tracing.Trace {
	return tracing.Select("textprep.tools")
}

func main() {
	initDisplay()
	setupTracing()

	commando.
		SetExecutableName("textprep-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for verifying font manifests and probing text sanitization and font selection.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("verify").
		SetDescription("Load a font manifest, verify every family (hashes, sizes, shaping tables) and print a per-family report.").
		SetShortDescription("verify a manifest").
		AddArgument("manifest", "manifest file path", "").
		AddFlag("no-tables,T", "skip SFNT parsing and shaping-table checks", commando.Bool, nil).
		AddFlag("trace,l", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runVerifyCommand)

	commando.
		Register("prepare").
		SetDescription("Sanitize text, detect its scripts and show the font family a manifest selects for it.").
		SetShortDescription("prepare text").
		AddArgument("manifest", "manifest file path", "").
		AddArgument("text...", "text to prepare (variadic argument parts joined by comma by commando)", "").
		AddFlag("item,i", "item id for removal diagnostics", commando.String, "-").
		AddFlag("trace,l", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runPrepareCommand)

	commando.
		Register("repl").
		SetDescription("Interactive loop: type text, see its sanitized form, detected scripts and selected family.").
		SetShortDescription("interactive inspection").
		AddArgument("manifest", "manifest file path", "").
		AddFlag("trace,l", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runReplCommand)

	commando.Parse(nil)
}

// setupTracing wires the schuko tracing backbone to the Go standard logger.
func setupTracing() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.textprep":       "Error",
		"trace.textprep.fonts": "Error",
		"trace.textprep.tools": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func applyTraceLevel(flag commando.FlagValue) {
	level, err := flag.GetString()
	if err != nil {
		fatalf("invalid --trace flag: %v", err)
	}
	for _, key := range traceKeys {
		t := tracing.Select(key)
		switch level {
		case "Debug":
			t.SetTraceLevel(tracing.LevelDebug)
		case "Info":
			t.SetTraceLevel(tracing.LevelInfo)
		case "Error":
			t.SetTraceLevel(tracing.LevelError)
		default:
			fatalf("invalid trace level: %s", level)
		}
	}
}

// traceKeys lists every tracer of the engine and this tool.
var traceKeys = []string{
	"textprep",
	"textprep.sanitize",
	"textprep.scripts",
	"textprep.fonts",
	"textprep.tools",
}

func runVerifyCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	applyTraceLevel(flags["trace"])
	book := mustOpenBook(args["manifest"].Value, mustFlagBool(flags["no-tables"], "no-tables"))
	report := book.VerifyAll()
	printFamilies(book)
	printReport(report)
	if report.HasCritical() {
		pterm.Error.Printf("%d critical finding(s); families excluded\n", len(report.Critical()))
		os.Exit(2)
	}
	pterm.Info.Println("manifest verified, all families usable")
}

func runPrepareCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	applyTraceLevel(flags["trace"])
	book := mustOpenBook(args["manifest"].Value, false)
	itemID, err := flags["item"].GetString()
	if err != nil {
		fatalf("invalid --item flag: %v", err)
	}
	if itemID == "-" {
		itemID = ""
	}
	text := strings.ReplaceAll(args["text"].Value, ",", " ")
	if strings.TrimSpace(text) == "" {
		fatalf("no text given")
	}
	res := sanitize.Sanitize(text, sanitize.WithItemID(itemID))
	scripts := script.Detect(res.Text)
	family := book.SelectFont(scripts)
	printPrepared(res, scripts, family)
}

func mustOpenBook(path string, noTables bool) *fontbook.Book {
	path = strings.TrimSpace(path)
	if path == "" {
		fatalf("manifest path is required")
	}
	opts := []fontbook.Option{}
	if noTables {
		opts = append(opts, fontbook.WithoutTableChecks())
	}
	book, err := fontbook.Open(path, opts...)
	if err != nil {
		fatalf("cannot open manifest %s: %v", path, err)
	}
	tracer().Infof("loaded manifest with %d families", len(book.Manifest().Families))
	return book
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "textprep-tools: "+format+"\n", args...)
	os.Exit(1)
}
