// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/exampledoc

// exampledoc generates example JSON and YAML documents from schema model files.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/exampledoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/exampledoc"
	_buildTime string
)

// cliOptions describes exampledoc CLI flags and subcommands.
type cliOptions struct {
	Logging loggingFlags `group:"Logging"`

	Version   versionCommand   `command:"version" description:"Print version information"`
	Example   exampleCommand   `command:"example" description:"Generate example document for a type or root element"`
	List      listCommand      `command:"list" description:"List root elements and types of a schema"`
	Namespace namespaceCommand `command:"namespace" description:"Print schema descriptor registered for a namespace"`
}

// loggingFlags configures diagnostics written to stderr.
type loggingFlags struct {
	Level  string `long:"log-level" description:"Diagnostic log level" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"warn"`
	Format string `long:"log-format" description:"Diagnostic log format" choice:"text" choice:"json" default:"text"`
}

// schemaInputArgs is the optional schema file positional argument.
type schemaInputArgs struct {
	Input string `positional-arg-name:"input" description:"Input schema model file path (optional; stdin when omitted)"`
}

// exampleCommand generates one example document.
type exampleCommand struct {
	runner *cliRunner

	TypeName    string `short:"t" long:"type" description:"Type name, plain or {namespace}name"`
	ElementName string `short:"e" long:"element" description:"Root element name, plain or {namespace}name"`
	Format      string `short:"F" long:"format" description:"Example output format" choice:"json" choice:"yaml" default:"json"`

	Args struct {
		Input  string `positional-arg-name:"input" description:"Input schema model file path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output example file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs example subcommand.
func (command *exampleCommand) Execute(_ []string) error {
	return command.runner.runExample(exampleOptions{
		TypeName:    command.TypeName,
		ElementName: command.ElementName,
		Format:      command.Format,
		InputPath:   command.Args.Input,
		OutputPath:  command.Args.Output,
	})
}

// listCommand prints schema contents.
type listCommand struct {
	runner *cliRunner
	Args   schemaInputArgs `positional-args:"yes"`
}

// Execute runs list subcommand.
func (command *listCommand) Execute(_ []string) error {
	return command.runner.runList(command.Args.Input)
}

// namespaceCommand prints namespace descriptor.
type namespaceCommand struct {
	runner *cliRunner
	Args   struct {
		URI   string `positional-arg-name:"uri" description:"Namespace URI" required:"yes"`
		Input string `positional-arg-name:"input" description:"Input schema model file path (optional; stdin when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs namespace subcommand.
func (command *namespaceCommand) Execute(_ []string) error {
	return command.runner.runNamespace(command.Args.URI, command.Args.Input)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	return command.runner.printVersionInfo()
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	logging     *loggingFlags
	logger      *slog.Logger
	programName string
}

// exampleOptions configures one example generation.
type exampleOptions struct {
	// TypeName selects type definition; exclusive with ElementName.
	TypeName string
	// ElementName selects root element; exclusive with TypeName.
	ElementName string
	Format      string
	InputPath   string
	OutputPath  string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "exampledoc"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// log returns diagnostics logger configured from global flags.
func (runner *cliRunner) log() *slog.Logger {
	if runner.logger != nil {
		return runner.logger
	}

	settings := loggingFlags{Level: "warn", Format: "text"}
	if runner.logging != nil {
		settings = *runner.logging
	}

	runner.logger = newLogger(runner.stderr, settings)
	return runner.logger
}

// newLogger builds slog logger writing to output.
func newLogger(output io.Writer, settings loggingFlags) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(settings.Level)); err != nil {
		level = slog.LevelWarn
	}

	handlerOptions := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(settings.Format, "json") {
		return slog.New(slog.NewJSONHandler(output, handlerOptions))
	}

	return slog.New(slog.NewTextHandler(output, handlerOptions))
}

// runExample generates example for selected reference and writes it to stdout or file.
func (runner *cliRunner) runExample(options exampleOptions) error {
	schema, err := runner.loadSchema(options.InputPath)
	if err != nil {
		return err
	}

	ref, err := selectReference(schema, options.TypeName, options.ElementName)
	if err != nil {
		return err
	}

	data, err := exampledoc.GenerateExample(ref, exampledoc.ExampleFormat(options.Format))
	if err != nil {
		return fmt.Errorf("generate example: %w", err)
	}

	runner.log().Debug("example generated",
		slog.String("type", ref.ExampleType().QualifiedName()),
		slog.String("format", options.Format),
		slog.Int("bytes", len(data)),
	)

	return runner.writeOutput(options.OutputPath, append(data, '\n'), "example")
}

// runList prints root elements and types with qualified names.
func (runner *cliRunner) runList(inputPath string) error {
	schema, err := runner.loadSchema(inputPath)
	if err != nil {
		return err
	}

	var builder strings.Builder
	for _, element := range schema.RootElements() {
		fmt.Fprintf(&builder, "element %s -> %s\n", element.QualifiedName(), element.Type.QualifiedName())
	}

	for _, typ := range schema.Types() {
		fmt.Fprintf(&builder, "type %s\n", typ.QualifiedName())
	}

	if _, err := io.WriteString(runner.stdout, builder.String()); err != nil {
		return fmt.Errorf("write list to stdout: %w", err)
	}

	return nil
}

// runNamespace prints namespace descriptor as YAML.
func (runner *cliRunner) runNamespace(uri, inputPath string) error {
	schema, err := runner.loadSchema(inputPath)
	if err != nil {
		return err
	}

	info, ok := schema.SchemaForNamespace(uri)
	if !ok {
		return fmt.Errorf("namespace %q is not registered", uri)
	}

	data, err := yaml.Marshal(info)
	if err != nil {
		return fmt.Errorf("encode namespace %q: %w", uri, err)
	}

	if _, err := runner.stdout.Write(data); err != nil {
		return fmt.Errorf("write namespace to stdout: %w", err)
	}

	return nil
}

// loadSchema reads and parses schema model from file or stdin.
func (runner *cliRunner) loadSchema(inputPath string) (*exampledoc.Schema, error) {
	data, sourcePath, err := runner.readSchemaInput(inputPath)
	if err != nil {
		return nil, fmt.Errorf("read schema input: %w", err)
	}

	schema, err := exampledoc.ParseSchema(data)
	if err != nil {
		return nil, fmt.Errorf("load schema %s: %w", sourcePath, err)
	}

	runner.log().Debug("schema loaded",
		slog.String("source", sourcePath),
		slog.Int("types", len(schema.Types())),
		slog.Int("root_elements", len(schema.RootElements())),
	)

	return schema, nil
}

// selectReference picks root element or type by CLI selection.
// Without selection a schema with exactly one root element uses it.
func selectReference(schema *exampledoc.Schema, typeName, elementName string) (exampledoc.Reference, error) {
	typeName = strings.TrimSpace(typeName)
	elementName = strings.TrimSpace(elementName)

	switch {
	case typeName != "" && elementName != "":
		return nil, errors.New("--type and --element are mutually exclusive")
	case elementName != "":
		element, ok := schema.RootElement(elementName)
		if !ok {
			return nil, fmt.Errorf("%w: root element %q", exampledoc.ErrUnknownType, elementName)
		}

		return element, nil
	case typeName != "":
		typ, err := schema.Type(typeName)
		if err != nil {
			return nil, err
		}

		return typ, nil
	}

	rootElements := schema.RootElements()
	if len(rootElements) != 1 {
		return nil, fmt.Errorf("schema declares %d root elements; select one with --element or a type with --type", len(rootElements))
	}

	return rootElements[0], nil
}

// writeOutput writes data to stdout or file.
func (runner *cliRunner) writeOutput(outputPath string, data []byte, what string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := runner.stdout.Write(data); err != nil {
			return fmt.Errorf("write %s to stdout: %w", what, err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", what, outputPath, err)
	}

	runner.log().Info("output written", slog.String("path", outputPath))
	return nil
}

// readSchemaInput reads schema from file path or stdin and returns source marker.
func (runner *cliRunner) readSchemaInput(path string) ([]byte, string, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("%w %q: %w", exampledoc.ErrReadSchemaFile, path, err)
		}

		return data, path, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read schema from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, "", errors.New("read schema from stdin: empty input")
	}

	return data, "(stdin)", nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Example.runner = runner
	options.List.runner = runner
	options.Namespace.runner = runner
	runner.logging = &options.Logging

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"example": strings.TrimSpace(fmt.Sprintf(`
Generate example document for a type or root element.
Reads schema model from file argument or stdin; writes example to file argument or stdout.
Without --type or --element the only root element of the schema is used.

Examples:
> $ %s example -e person schema.yaml > person.json
> $ cat schema.yaml | %s example -t '{http://gedcomx.org/v1/}Person' -F yaml
`, programName, programName)),
		"list": strings.TrimSpace(fmt.Sprintf(`
List root elements and types declared by schema model with qualified names.

Examples:
> $ %s list schema.yaml
`, programName)),
		"namespace": strings.TrimSpace(fmt.Sprintf(`
Print prefix, location and documentation registered for a namespace URI.

Examples:
> $ %s namespace http://gedcomx.org/v1/ schema.yaml
`, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func (runner *cliRunner) printVersionInfo() error {
	_, err := fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)

	return err
}
