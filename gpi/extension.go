package gpi

import (
	"os"
	"plugin"
	"strings"
)

// ExtraEntryPointSymbol is the symbol every GPI_EXTRA plugin must export:
// a niladic function run once, in listed order, during bootstrap, after
// every linked backend has been brought up and its Startup callback has
// fired.
const ExtraEntryPointSymbol = "GpiExtraEntry"

// ExtensionEntryPoint is the signature looked up under
// ExtraEntryPointSymbol in a GPI_EXTRA shared object.
type ExtensionEntryPoint func() error

// ExtraSpec names one GPI_EXTRA entry: a shared object path and the
// symbol to call inside it (spec.md §1 "GPI_EXTRA").
type ExtraSpec struct {
	Path   string
	Symbol string
}

// ParseExtraEnv parses the GPI_EXTRA value: a comma-separated list of
// entries, each "path" or "path:symbol". Entries with no ":symbol" use
// ExtraEntryPointSymbol. The split is on the LAST colon in each entry so
// Windows-style drive-letter paths ("C:\foo.dll") survive unscathed.
func ParseExtraEnv(value string) []ExtraSpec {
	var specs []ExtraSpec
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		idx := strings.LastIndex(entry, ":")
		if idx <= 1 { // no colon, or it's a drive letter's own colon at index 1
			specs = append(specs, ExtraSpec{Path: entry, Symbol: ExtraEntryPointSymbol})
			continue
		}
		specs = append(specs, ExtraSpec{Path: entry[:idx], Symbol: entry[idx+1:]})
	}
	return specs
}

// LoadExtraFromEnviron reads GPI_EXTRA and loads every listed extension
// in order, via LoadExtension. It is a no-op, returning no error, when
// the variable is unset or empty.
func LoadExtraFromEnviron() error {
	value, ok := os.LookupEnv("GPI_EXTRA")
	if !ok || value == "" {
		return nil
	}
	for _, spec := range ParseExtraEnv(value) {
		if err := LoadExtension(spec); err != nil {
			return err
		}
	}
	return nil
}

// LoadExtension opens the shared object at spec.Path via the plugin
// package and invokes its exported entry point. Loading a Go plugin is
// itself an external-collaborator concern (the extension's own init
// logic is out of scope per spec.md's Non-goals); this is only the
// mechanical loader seam.
func LoadExtension(spec ExtraSpec) error {
	p, err := plugin.Open(spec.Path)
	if err != nil {
		return &ExtensionLoadError{Entry: spec.Path, Err: err}
	}
	sym, err := p.Lookup(spec.Symbol)
	if err != nil {
		return &ExtensionLoadError{Entry: spec.Path + ":" + spec.Symbol, Err: err}
	}
	entry, ok := sym.(func() error)
	if !ok {
		return &ExtensionLoadError{Entry: spec.Path + ":" + spec.Symbol, Err: ErrBadEntryPointSignature}
	}
	return entry()
}
