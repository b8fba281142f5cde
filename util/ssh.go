// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package util implements the SSH console used to access the protection unit
// commands.
package util

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"net"
	"sync"

	"golang.org/x/crypto/ssh"
	"golang.org/x/term"
)

// Console represents an SSH console instance.
type Console struct {
	// Banner is the login welcome banner
	Banner string
	// Help returns the `help` command output
	Help func(*term.Terminal) string
	// Handler is the terminal command handler
	Handler func(*term.Terminal, string) error
	// Listener is the SSH server listener
	Listener net.Listener

	// Signer is the SSH host key, generated on Start when nil
	Signer ssh.Signer

	tee *logTee
}

// logTee duplicates log output on every open session terminal.
type logTee struct {
	sync.Mutex

	out   io.Writer
	terms map[io.Writer]struct{}
}

func (l *logTee) add(w io.Writer) {
	l.Lock()
	defer l.Unlock()

	l.terms[w] = struct{}{}
}

func (l *logTee) remove(w io.Writer) {
	l.Lock()
	defer l.Unlock()

	delete(l.terms, w)
}

func (l *logTee) Write(p []byte) (n int, err error) {
	l.Lock()
	defer l.Unlock()

	for w := range l.terms {
		_, _ = w.Write(p)
	}

	return l.out.Write(p)
}

// session serves a single console session, log output is duplicated on the
// terminal for its duration.
func (c *Console) session(conn io.ReadWriteCloser, t *term.Terminal) {
	defer conn.Close()

	c.tee.add(t)
	defer c.tee.remove(t)

	fmt.Fprintf(t, "%s\n", c.Banner)

	if c.Help != nil {
		fmt.Fprintf(t, "%s\n", c.Help(t))
	}

	for {
		line, err := t.ReadLine()

		if err == io.EOF {
			break
		}

		if err != nil {
			log.Printf("readline error, %v", err)
			continue
		}

		err = c.Handler(t, line)

		if err == io.EOF {
			break
		}

		if err != nil {
			fmt.Fprintf(t, "error: %v\n", err)
		}
	}

	log.Printf("closing ssh connection")
}

func (c *Console) handleRequests(t *term.Terminal, requests <-chan *ssh.Request) {
	for req := range requests {
		reqSize := len(req.Payload)

		switch req.Type {
		case "shell":
			// do not accept payload commands
			if len(req.Payload) == 0 {
				_ = req.Reply(true, nil)
			}
		case "pty-req":
			// p10, 6.2.  Requesting a Pseudo-Terminal, RFC4254
			if reqSize < 4 {
				log.Printf("malformed pty-req request")
				continue
			}

			termVariableSize := int(req.Payload[3])

			if reqSize < 4+termVariableSize+8 {
				log.Printf("malformed pty-req request")
				continue
			}

			w := binary.BigEndian.Uint32(req.Payload[4+termVariableSize:])
			h := binary.BigEndian.Uint32(req.Payload[4+termVariableSize+4:])

			_ = t.SetSize(int(w), int(h))
			_ = req.Reply(true, nil)
		case "window-change":
			// p10, 6.7.  Window Dimension Change Message, RFC4254
			if reqSize < 8 {
				log.Printf("malformed window-change request")
				continue
			}

			w := binary.BigEndian.Uint32(req.Payload)
			h := binary.BigEndian.Uint32(req.Payload[4:])

			_ = t.SetSize(int(w), int(h))
		default:
			if req.WantReply {
				_ = req.Reply(false, nil)
			}
		}
	}
}

func (c *Console) handleChannel(newChannel ssh.NewChannel) {
	if t := newChannel.ChannelType(); t != "session" {
		_ = newChannel.Reject(ssh.UnknownChannelType, fmt.Sprintf("unknown channel type: %s", t))
		return
	}

	conn, requests, err := newChannel.Accept()

	if err != nil {
		log.Printf("error accepting channel, %v", err)
		return
	}

	t := term.NewTerminal(conn, "")
	t.SetPrompt(string(t.Escape.Red) + "> " + string(t.Escape.Reset))

	go c.session(conn, t)
	go c.handleRequests(t, requests)
}

func (c *Console) handleChannels(chans <-chan ssh.NewChannel) {
	for newChannel := range chans {
		go c.handleChannel(newChannel)
	}
}

func (c *Console) listen(srv *ssh.ServerConfig) {
	for {
		conn, err := c.Listener.Accept()

		if err != nil {
			log.Printf("error accepting connection, %v", err)
			return
		}

		sshConn, chans, reqs, err := ssh.NewServerConn(conn, srv)

		if err != nil {
			log.Printf("error accepting handshake, %v", err)
			continue
		}

		log.Printf("new ssh connection from %s (%s)", sshConn.RemoteAddr(), sshConn.ClientVersion())

		go ssh.DiscardRequests(reqs)
		go c.handleChannels(chans)
	}
}

// Start instantiates an SSH console on the console listener.
func (c *Console) Start() (err error) {
	if c.Listener == nil || c.Handler == nil {
		return fmt.Errorf("console requires a listener and a handler")
	}

	srv := &ssh.ServerConfig{
		NoClientAuth: true,
	}

	if c.Signer == nil {
		key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)

		if err != nil {
			return fmt.Errorf("private key generation error, %v", err)
		}

		if c.Signer, err = ssh.NewSignerFromKey(key); err != nil {
			return fmt.Errorf("key conversion error, %v", err)
		}
	}

	c.tee = &logTee{
		out:   log.Writer(),
		terms: make(map[io.Writer]struct{}),
	}

	log.SetOutput(c.tee)
	log.Printf("starting ssh server (%s)", ssh.FingerprintSHA256(c.Signer.PublicKey()))

	srv.AddHostKey(c.Signer)

	go c.listen(srv)

	return
}
