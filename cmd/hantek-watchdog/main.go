// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hantek-watchdog (re)starts a hantek-daq process, monitors
// its resource usage, and mails an alert if it keeps dying.
package main // import "github.com/hwpl/openhantek/cmd/hantek-watchdog"

import (
	"crypto/tls"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	mail "gopkg.in/gomail.v2"
	"github.com/sbinet/pmon"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
)

var (
	daqPath = flag.String("daq", "hantek-daq", "path to the hantek-daq binary")
	daqArgs = flag.String("args", "", "space-separated arguments to pass to hantek-daq")
	dir     = flag.String("dir", "/var/log/hantek", "directory for daq/pmon logs")
	doMon   = flag.Bool("pmon", false, "enable pmon monitoring")
	freq    = flag.Duration("freq", 1*time.Second, "pmon sampling frequency")
	maxDeaths = flag.Int("max-deaths", 3, "consecutive restarts before a mail alert")

	stop = make(chan os.Signal, 1)
)

func main() {
	flag.Parse()

	log.SetPrefix("hantek-watchdog: ")
	log.SetFlags(0)

	if err := run(); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run() error {
	signal.Notify(stop, os.Interrupt)
	defer signal.Stop(stop)

	if err := os.MkdirAll(*dir, 0755); err != nil {
		return fmt.Errorf("could not create log directory %q: %w", *dir, err)
	}

	var grp errgroup.Group
	kill := make(chan struct{})
	grp.Go(func() error {
		return supervise(kill)
	})

	go func() {
		<-stop
		close(kill)
	}()

	return grp.Wait()
}

// supervise restarts the daq process every time it exits, counting
// consecutive deaths and mailing an alert once maxDeaths is reached —
// the same restart-loop shape this codebase uses for its C++ DAQ
// processes, adapted to a single watched child instead of a fixed
// list.
func supervise(kill chan struct{}) error {
	deaths := 0

	for {
		select {
		case <-kill:
			return nil
		default:
		}

		start := time.Now()
		err := runOnce(kill)
		uptime := time.Since(start)

		select {
		case <-kill:
			return nil
		default:
		}

		if err != nil {
			log.Printf("hantek-daq exited: %+v", err)
		}

		if uptime < 5*time.Second {
			deaths++
		} else {
			deaths = 0
		}

		if deaths >= *maxDeaths {
			alertMail(deaths, err)
			deaths = 0
		}

		time.Sleep(time.Second)
	}
}

func runOnce(kill chan struct{}) error {
	args := strings.Fields(*daqArgs)
	cmd := exec.Command(*daqPath, args...)

	out, err := os.Create(filepath.Join(*dir, "hantek-daq.log"))
	if err != nil {
		return fmt.Errorf("could not create output log file: %w", err)
	}
	defer out.Close()
	cmd.Stdout = out
	cmd.Stderr = out

	log.Printf("starting %q...", *daqPath)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("could not start %q: %w", *daqPath, err)
	}

	if *doMon {
		p, err := pmon.Monitor(cmd.Process.Pid)
		if err != nil {
			return fmt.Errorf("could not start monitoring %q (pid=%d): %w", *daqPath, cmd.Process.Pid, err)
		}
		f, err := os.Create(filepath.Join(*dir, "hantek-daq-pmon.log"))
		if err != nil {
			return fmt.Errorf("could not create pmon log file: %w", err)
		}
		defer f.Close()
		p.W = f
		p.Freq = *freq

		go func() {
			if err := p.Run(); err != nil {
				log.Printf("could not monitor %q: %+v", *daqPath, err)
			}
		}()
		defer func() {
			if err := p.Kill(); err != nil {
				log.Printf("could not stop monitoring %q: %+v", *daqPath, err)
			}
		}()
	}

	errch := make(chan error, 1)
	go func() { errch <- cmd.Wait() }()

	select {
	case <-kill:
		// give it a chance to shut down cleanly before SIGKILL.
		_ = cmd.Process.Signal(unix.SIGTERM)
		select {
		case <-errch:
		case <-time.After(5 * time.Second):
			_ = cmd.Process.Kill()
		}
		return nil
	case err := <-errch:
		return err
	}
}

var (
	alertMailUsr  = os.Getenv("MAIL_USERNAME")
	alertMailPwd  = os.Getenv("MAIL_PASSWORD")
	alertMailSrv  = os.Getenv("MAIL_SERVER")
	alertMailPort = atoi(os.Getenv("MAIL_PORT"))
	alertMailTgts = strings.Split(os.Getenv("MAIL_TGTS"), ",")
)

func alertMail(deaths int, lastErr error) {
	if alertMailUsr == "" || alertMailPwd == "" ||
		alertMailSrv == "" || alertMailPort == 0 ||
		len(alertMailTgts) == 0 {
		log.Printf("could not send mail alert: missing credentials")
		return
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", alertMailUsr)
	msg.SetHeader("Bcc", alertMailTgts...)
	msg.SetHeader("Subject", fmt.Sprintf("[hantek-watchdog] %s keeps dying", *daqPath))
	msg.SetBody("text/plain", fmt.Sprintf("%d consecutive restarts within 5s.\nlast error: %v", deaths, lastErr))

	dial := mail.NewDialer(alertMailSrv, alertMailPort, alertMailUsr, alertMailPwd)
	dial.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	if err := dial.DialAndSend(msg); err != nil {
		log.Printf("could not send mail alert: %+v", err)
	}
}

func atoi(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
