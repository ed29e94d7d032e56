//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"fmt"
	"log"
	"os"

	"ved/commander"
	"ved/editor"
	"ved/screen"
)

func main() {

	var filename string
	var script string

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // run a script against the file and exit
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				fmt.Fprintln(os.Stderr, "No file specified for --eval option")
				os.Exit(1)
			}
		default:
			filename = argi
		}
	}

	if filename == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s <filename>\n", os.Args[0])
		os.Exit(1)
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor()

	// A missing file is created empty; failing even that is fatal.
	if err := e.ReadFile(filename); err != nil {
		log.Fatalf("%s: %v", filename, err)
	}

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	if script != "" {
		// Run a ved script and exit.
		result, err := c.ParseEvalFile(script)
		if err != nil {
			log.Fatalf("%s: %v", script, err)
		}
		fmt.Println(result)
		return
	}

	// Create a screen to manage display.
	s := screen.NewScreen()
	if s == nil {
		os.Exit(1)
	}
	defer s.Close()

	// Open a log file; the terminal belongs to termbox now.
	f, err := os.OpenFile(os.Getenv("HOME")+"/.vedlog", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()

	// Run the main event loop.
	s.Render(e, c)
	for c.IsRunning() {
		event := s.GetNextEvent()
		if event == nil {
			continue
		}
		if err := c.ProcessEvent(event); err != nil {
			log.Output(1, err.Error())
		}
		s.Render(e, c)
	}
}
