// Command kinedemo runs a scene file in the terminal.
//
// The scene is reloaded whenever its file changes. Esc, Ctrl-C or q quits.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/setanarut/kine"
	"github.com/setanarut/kine/scene"
)

//go:embed scenes/demo.yaml
var demoScene []byte

type demo struct {
	screen  tcell.Screen
	drawer  *termDrawer
	sound   *clicker
	world   *kine.World
	path    string
	status  string
	hits    uint32
	paused  bool
	watcher *scene.Watcher
}

func main() {
	path := flag.String("scene", "", "scene file, the built-in demo when empty")
	mute := flag.Bool("mute", false, "disable collision sounds")
	flag.Parse()

	d := &demo{path: *path}
	if err := d.load(); err != nil {
		log.Fatalln(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalln(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalln(err)
	}
	d.screen = screen
	d.drawer = newTermDrawer(screen, d.world.Config.Scale)

	if !*mute {
		d.sound = newClicker()
		if err := d.sound.Initialize(); err != nil {
			d.sound = nil
			d.status = fmt.Sprintf("audio: %v", err)
		}
	}

	if d.path != "" {
		if w, err := scene.NewWatcher(filepath.Dir(d.path)); err == nil {
			d.watcher = w
		} else {
			d.status = fmt.Sprintf("watch: %v", err)
		}
	}

	d.run()
	d.cleanup()
}

func (d *demo) load() error {
	var (
		s   *scene.Scene
		err error
	)
	if d.path == "" {
		s, err = scene.Parse(demoScene)
	} else {
		s, err = scene.Load(d.path)
	}
	if err != nil {
		return err
	}
	w, err := s.Build()
	if err != nil {
		return err
	}
	d.world = w
	d.hits = 0
	if d.drawer != nil {
		d.drawer.scale = w.Config.Scale
	}
	return nil
}

func (d *demo) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var changes chan string
	var watchErrs chan error
	if d.watcher != nil {
		changes = d.watcher.Events
		watchErrs = d.watcher.Errors
	}

	for {
		select {
		case ev := <-eventChan:
			if !d.handleInput(ev) {
				return
			}
		case name, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			if filepath.Clean(name) != filepath.Clean(d.path) {
				continue
			}
			if err := d.load(); err != nil {
				d.status = err.Error()
			} else {
				d.status = "reloaded " + filepath.Base(name)
			}
		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			d.status = fmt.Sprintf("watch: %v", err)
		case <-ticker.C:
			if !d.paused {
				d.step()
			}
			d.draw()
		}
	}
}

func (d *demo) step() {
	d.world.Step(1.0 / 60.0)
	_, collisions := d.world.Stats()
	if collisions != d.hits && d.sound != nil {
		d.sound.Click(int(collisions - d.hits))
	}
	d.hits = collisions
}

func (d *demo) draw() {
	d.screen.Clear()
	kine.DrawWorld(d.world, d.drawer)

	info := kine.DebugInfo(d.world)
	if d.paused {
		info = "[paused] " + info
	}
	d.text(0, 0, info, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	if d.status != "" {
		_, h := d.screen.Size()
		d.text(0, h-1, d.status, tcell.StyleDefault.Foreground(tcell.ColorGreen))
	}
	d.screen.Show()
}

func (d *demo) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		if r == '\n' {
			y++
			x = 0
			continue
		}
		d.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (d *demo) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case ' ':
				d.paused = !d.paused
			case 'r':
				if err := d.load(); err != nil {
					d.status = err.Error()
				}
			case 's':
				d.step()
			}
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return true
}

func (d *demo) cleanup() {
	if d.watcher != nil {
		_ = d.watcher.Close()
	}
	if d.sound != nil {
		d.sound.Close()
	}
	d.screen.Fini()
	if d.status != "" {
		fmt.Fprintln(os.Stderr, d.status)
	}
}
