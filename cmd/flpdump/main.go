// Command flpdump inspects an FL Studio project's event run: it can list
// every tag in the stream, summarize the mixer, summarize the patterns, or
// render a pattern's controller automation to a mono WAV file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/flp-go/flp"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func main() {
	var (
		tags      = flag.Bool("tags", false, "list every event's tag and body length")
		mixer     = flag.Bool("mixer", false, "summarize the mixer's inserts")
		patterns  = flag.Bool("patterns", false, "summarize the pattern collection")
		renderCC  = flag.String("render-cc", "", "render a pattern's controller automation to a mono WAV file at the given path")
		patternNo = flag.Int("pattern", 1, "pattern index to render, with -render-cc")
		major     = flag.Int("fl-major", 20, "FL Studio major version the project was saved with")
		minor     = flag.Int("fl-minor", 9, "FL Studio minor version")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: flpdump [flags] <event-run-file>")
	}

	cfg := flp.Config{Version: flp.FLVersion{Major: *major, Minor: *minor}}
	s, err := flp.Open(flag.Arg(0), cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *tags {
		dumpTags(s)
	}
	if *mixer {
		dumpMixer(s)
	}
	if *patterns {
		dumpPatterns(s)
	}
	if *renderCC != "" {
		if err := renderControllerWAV(s, *patternNo, *renderCC); err != nil {
			log.Fatal(err)
		}
	}
	for _, w := range s.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
}

func dumpTags(s *flp.Stream) {
	for _, e := range s.Events {
		fmt.Printf("tag=%-3d kind=%-8s len=%d\n", e.Tag, e.Kind(), len(e.Body))
	}
}

func dumpMixer(s *flp.Stream) {
	m := s.Mixer()
	n, err := m.Len()
	if err != nil {
		fmt.Println("mixer: no inserts found")
		return
	}
	fmt.Printf("mixer: %d inserts (apdc=%v)\n", n, m.APDC())
	for _, ins := range m.Inserts() {
		vol, _ := ins.Volume()
		fmt.Printf("  insert %3d %-20q dock=%-6s vol=%d\n", ins.Index(), ins.Name(), ins.Dock(), vol)
	}
}

func dumpPatterns(s *flp.Stream) {
	ps := s.Patterns()
	n, err := ps.Len()
	if err != nil {
		fmt.Println("patterns: none found")
		return
	}
	fmt.Printf("patterns: %d\n", n)
	for _, p := range ps.All() {
		fmt.Printf("  pattern %3d %-20q notes=%d looped=%v\n", p.Index(), p.Name(), len(p.Notes()), p.Looped())
	}
}

// renderControllerWAV writes pattern patternNo's controller automation as a
// mono WAV, one sample per automation point, scaled to 16-bit signed range.
// This is a diagnostic convenience, not a faithful audio rendering of the
// project.
func renderControllerWAV(s *flp.Stream, patternNo int, path string) error {
	pat, err := s.Patterns().Pattern(patternNo)
	if err != nil {
		return err
	}
	ctrls := pat.Controllers()
	if len(ctrls) == 0 {
		return fmt.Errorf("flpdump: pattern %d has no controller automation", patternNo)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	const sampleRate = 8000
	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	defer enc.Close()

	samples := make([]int, len(ctrls))
	for i, c := range ctrls {
		samples[i] = scaleControllerSample(c.Value())
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           samples,
		SourceBitDepth: 16,
	}
	return enc.Write(buf)
}

// scaleControllerSample maps a controller automation value in [0,1] to a
// 16-bit signed PCM sample, clamping out-of-range input rather than
// wrapping it.
func scaleControllerSample(v float32) int {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return int(v*65534) - 32767
}
