package flp_test

import (
	"fmt"

	"github.com/flp-go/flp"
	"github.com/flp-go/flp/event"
)

// This example builds a tiny event run by hand (a project's real event run
// comes from the RIFF-like container's data chunk body) and reads the
// mixer's master insert name back out of it.
func Example() {
	data := event.SerializeStream([]*event.Event{
		{Tag: event.TagInsertName, Body: event.EncodeText("Master", true, true)},
		{Tag: event.TagInsertOutput, Body: event.EncodeI32(0)},
	})

	s, err := flp.Parse(data, flp.Config{Version: flp.FLVersion{Major: 20, Minor: 9, Patch: 2}})
	if err != nil {
		panic(err)
	}

	master, err := s.Mixer().Insert(0)
	if err != nil {
		panic(err)
	}
	fmt.Println(master.Name())
	// Output: Master
}
