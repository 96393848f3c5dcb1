// This file is part of Gopher80.
//
// Gopher80 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher80 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher80.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher80/comloader"
	"github.com/jetsetilly/gopher80/cpm"
	"github.com/jetsetilly/gopher80/cpm/console"
	"github.com/jetsetilly/gopher80/hardware"
	"github.com/jetsetilly/gopher80/logger"
	"github.com/jetsetilly/gopher80/modalflag"
	"github.com/jetsetilly/gopher80/performance"
	"github.com/jetsetilly/gopher80/statsview"
	"github.com/jetsetilly/gopher80/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Version)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		os.Exit(20)
	}
}

// parseLoadOffset interprets the optional second argument of the RUN and
// PERFORMANCE modes: a hexadecimal load address for the program image.
func parseLoadOffset(md *modalflag.Modes) (uint16, error) {
	if len(md.RemainingArgs()) < 2 {
		return cpm.DefaultLoadOffset, nil
	}

	offset, err := strconv.ParseUint(md.GetArg(1), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid load offset (%s)", md.GetArg(1))
	}

	return uint16(offset), nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stderr")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	stateDump := md.AddString("memviz", "", "write machine state graph to file on exit (graphviz dot)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program file required for %s mode", md)
	case 1, 2:
		// continues below
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	offset, err := parseLoadOffset(md)
	if err != nil {
		return err
	}

	ld := comloader.NewLoader(md.GetArg(0), offset)
	err = ld.Load()
	if err != nil {
		return err
	}

	con, err := console.NewConsole()
	if err != nil {
		return err
	}
	defer con.CleanUp()

	// restore the terminal on ctrl-c. the default signal behaviour would
	// leave it in cbreak mode
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		con.CleanUp()
		fmt.Print("\r\n")
		os.Exit(2)
	}()

	sys := hardware.NewCPM(cpm.NewIOBus())
	cpm.Setup(sys, &ld)

	err = cpm.Run(sys, con)
	if err != nil {
		return err
	}

	if *stateDump != "" {
		f, err := os.Create(*stateDump)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, sys)
	}

	logger.Logf("run", "terminated: %s", sys.CPU.String())

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	cpuprofile := md.AddBool("cpuprofile", false, "write Go cpu profile")
	memprofile := md.AddBool("memprofile", false, "write Go memory profile")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program file required for %s mode", md)
	case 1, 2:
		// continues below
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	offset, err := parseLoadOffset(md)
	if err != nil {
		return err
	}

	ld := comloader.NewLoader(md.GetArg(0), offset)
	err = ld.Load()
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, &ld, *duration, *cpuprofile, *memprofile)
}
