// Command gpi-inspect builds the harness backend, prints its root
// handle's full name and kind, then prints a go-pretty table of every
// object in the handle tree (name, kind, indexable flag, element count),
// in the same table style as the teacher's core.PrintState.
package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/gogpi/gpi"
	"github.com/sarchlab/gogpi/harness"
)

type silentRuntime struct{}

func (silentRuntime) EmbedInitRuntime(argv []string) error    { return nil }
func (silentRuntime) EmbedSimEvent(kind gpi.EventKind, msg string) {}
func (silentRuntime) EmbedSimCleanup()                          {}

func main() {
	engine := sim.NewSerialEngine()
	s := harness.NewSimulator(engine, 1*sim.GHz, silentRuntime{})

	top, _ := s.GetRootHandle("")
	fmt.Println(describe(top, 0))

	cbTable := table.NewWriter()
	cbTable.SetTitle("gpi-inspect: registered object attributes")
	cbTable.AppendHeader(table.Row{"Name", "Kind", "Indexable", "NumElems"})
	walk(top, cbTable)
	fmt.Println(cbTable.Render())
}

func describe(obj gpi.Object, depth int) string {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	return fmt.Sprintf("%s%s (%s)", indent, obj.FullName(), obj.Kind())
}

func walk(obj gpi.Object, t table.Writer) {
	t.AppendRow(table.Row{obj.FullName(), obj.Kind().String(), obj.Indexable(), obj.NumElems()})

	it, ok := obj.Iterate(gpi.SelObjects)
	if !ok {
		return
	}
	for {
		status, child, _, _ := it.Next()
		if status == gpi.StepEnd {
			return
		}
		if child != nil {
			walk(child, t)
		}
	}
}
