package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	logrus "github.com/sirupsen/logrus"

	"voltswap_client/internal/api"
	"voltswap_client/internal/config"
	"voltswap_client/internal/events"
	"voltswap_client/internal/flows"
	"voltswap_client/internal/logger"
	"voltswap_client/internal/mockapi"
	"voltswap_client/internal/scan"
	"voltswap_client/internal/session"
)

// stdinDevice adapts standard input to the camera decode-loop contract:
// each scanned line is one decoded code. Start spawns the pump, Stop
// tears it down; the scan.Controller above it enforces exclusive use.
type stdinDevice struct {
	lines chan string
	done  chan struct{}
	dead  chan struct{}
}

func newStdinDevice() *stdinDevice {
	return &stdinDevice{lines: make(chan string)}
}

func (d *stdinDevice) Start(viewport string, onDecode func(text string)) error {
	d.done = make(chan struct{})
	d.dead = make(chan struct{})
	done, dead := d.done, d.dead
	go func() {
		defer close(dead)
		for {
			select {
			case text := <-d.lines:
				onDecode(text)
			case <-done:
				return
			}
		}
	}()
	return nil
}

// Stop tears the pump down and waits for it to exit, so a stopped device
// can never deliver another decode.
func (d *stdinDevice) Stop() error {
	close(d.done)
	<-d.dead
	return nil
}

// Terminal kiosk client. Scanned codes arrive on stdin, one per line, and
// are routed through the scanner controller the way a camera feed would
// be; "mode booking", "mode user" and "mode auto" release the stream,
// switch validation modes and reacquire.
func main() {
	cfg := config.Load()
	logger.Setup(cfg.LogPath, logrus.InfoLevel)

	sess, err := pickSessionStore(cfg)
	if err != nil {
		log.Fatalf("session store: %v", err)
	}
	bus := events.NewBus()

	// Backend strategy is chosen once here, never per call.
	var backend api.Backend
	switch cfg.Mode {
	case config.ModeMock:
		store := mockapi.NewStore(cfg.OTPTTL)
		store.Seed()
		backend = mockapi.NewSimulatedBackend(store, sess, bus, cfg.JWTSecret)
	default:
		backend = api.NewRemoteBackend(cfg.APIBaseURL, sess, bus)
	}

	go func() {
		for e := range bus.Subscribe() {
			fmt.Printf("!! %s: %s\n", e.Kind, e.Message)
		}
	}()

	ctx := context.Background()

	stationName := cfg.KioskStationID
	if st, err := backend.StationByID(ctx, cfg.KioskStationID); err == nil {
		stationName = st.Name
	}
	kiosk := flows.NewKiosk(backend, cfg.KioskStationID, stationName)

	dev := newStdinDevice()
	scanner := scan.NewController(dev)
	onDecode := func(code string) {
		out := kiosk.Validate(ctx, code)
		switch {
		case out.OK && out.Booking != nil:
			fmt.Printf("OK booking %s for vehicle %s, %d battery(ies)\n",
				out.Booking.ID, out.Booking.VehicleID, out.Booking.BatteryCount)
		case out.OK && out.Account != nil:
			fmt.Printf("OK user %s (%s)\n", out.Account.Fullname, out.Account.Email)
		default:
			fmt.Printf("REJECTED: %s\n", out.Reason)
		}
	}
	if err := scanner.Start("kiosk-viewport", onDecode); err != nil {
		log.Fatalf("scanner: %v", err)
	}
	defer scanner.Stop()

	fmt.Printf("Kiosk at %s (%s). Scan a code or type 'mode booking|user|auto'.\n",
		stationName, cfg.Mode)

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if rest, found := strings.CutPrefix(line, "mode "); found {
			// Release the stream before switching, reacquire after.
			if err := scanner.Stop(); err != nil {
				log.Fatalf("scanner stop: %v", err)
			}
			switch rest {
			case "booking":
				kiosk.SetMode(flows.ModeBooking)
			case "user":
				kiosk.SetMode(flows.ModeUser)
			default:
				kiosk.SetMode(flows.ModeNone)
			}
			if err := scanner.Start("kiosk-viewport", onDecode); err != nil {
				log.Fatalf("scanner: %v", err)
			}
			fmt.Printf("mode set to %q\n", kiosk.Mode())
			continue
		}

		if !scanner.Active() {
			fmt.Println("scanner inactive, code dropped")
			continue
		}
		dev.lines <- line
	}
}

func pickSessionStore(cfg config.Config) (session.Store, error) {
	if cfg.SessionFile != "" {
		return session.NewFileStore(cfg.SessionFile)
	}
	return session.NewMemoryStore(), nil
}
