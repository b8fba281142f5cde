// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// The emulator runs the CM0+ protection unit initialization against a
// software model of the PSoC 6 protection unit registers, and serves the
// protection unit console over SSH or on the controlling terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"golang.org/x/term"

	"github.com/usbarmory/GoTEE-psoc6/mem"
	"github.com/usbarmory/GoTEE-psoc6/prot"
	"github.com/usbarmory/GoTEE-psoc6/secure_cm0p/cmd"
	"github.com/usbarmory/GoTEE-psoc6/secure_cm0p/internal"
	"github.com/usbarmory/GoTEE-psoc6/sim"
	"github.com/usbarmory/GoTEE-psoc6/util"
)

var (
	target  = flag.String("target", "2m", "target part ("+strings.Join(mem.Names(), ", ")+")")
	peri    = flag.Int("peri", 0, "override the PPU programming model (1, 2)")
	lock    = flag.Bool("lock", true, "configure and lock the protection units on start")
	sshAddr = flag.String("ssh", "", "serve the console over SSH on the given address (e.g. 127.0.0.1:2222)")
	console = flag.Bool("console", false, "serve the console on the controlling terminal")
)

func init() {
	log.SetFlags(log.Ltime)
	log.SetOutput(os.Stdout)
}

type stdio struct {
	io.Reader
	io.Writer
}

func serveTerminal() (err error) {
	fd := int(os.Stdin.Fd())

	state, err := term.MakeRaw(fd)

	if err != nil {
		return fmt.Errorf("could not set raw mode, %v", err)
	}

	defer term.Restore(fd, state)

	cmd.Serve(stdio{os.Stdin, os.Stdout})

	return
}

func serveSSH(addr string) (err error) {
	listener, err := net.Listen("tcp", addr)

	if err != nil {
		return fmt.Errorf("could not initialize SSH listener, %v", err)
	}

	ssh := &util.Console{
		Banner:   cmd.Banner,
		Help:     cmd.Help,
		Handler:  cmd.Handle,
		Listener: listener,
	}

	if err = ssh.Start(); err != nil {
		return fmt.Errorf("could not initialize SSH server, %v", err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig

	return listener.Close()
}

func main() {
	flag.Parse()

	part, err := mem.Lookup(*target)

	if err != nil {
		log.Fatalf("SM %v", err)
	}

	switch *peri {
	case 0:
	case int(prot.PERI1), int(prot.PERI2):
		part.Target.Peri = prot.PeriVersion(*peri)
	default:
		log.Fatalf("SM invalid PERI version %d", *peri)
	}

	machine := sim.New(part.Target.Peri, prot.CM0)

	cmd.Banner = fmt.Sprintf("%s/%s (%s) • PSoC 6 protection unit emulator (%s, PERI v%d)",
		runtime.GOOS, runtime.GOARCH, runtime.Version(), part.Target.Name, part.Target.Peri)
	cmd.Target = &part.Target
	cmd.Layout = &part.Layout
	cmd.Unit = prot.NewUnit(machine)
	cmd.Machine = machine

	log.Print(cmd.Banner)

	if *lock {
		if err = protunits.Init(cmd.Unit, cmd.Target, cmd.Layout); err != nil {
			log.Fatalf("SM protection unit initialization failed, %v", err)
		}

		log.Printf("SM protection units locked (%d register writes)", machine.Writes())
	}

	switch {
	case len(*sshAddr) > 0:
		err = serveSSH(*sshAddr)
	case *console:
		err = serveTerminal()
	}

	if err != nil {
		log.Fatalf("SM %v", err)
	}

	log.Printf("SM says goodbye")
}
