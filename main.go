package main

import (
	"context"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	log "github.com/withmandala/go-log"

	"go-xtest-bridge/internal/fakeinput"
	"go-xtest-bridge/internal/fakeinput/kwin"
	"go-xtest-bridge/internal/fakeinput/uinput"
	"go-xtest-bridge/internal/fakeinput/wlr"
	"go-xtest-bridge/internal/logging"
	"go-xtest-bridge/internal/script"
	"go-xtest-bridge/internal/xtest"
)

var logger *log.Logger

func main() {
	parser := argparse.NewParser("go-xtest-bridge", "replay XTest events through a compositor fake-input interface")
	scriptPath := parser.String("s", "script", &argparse.Options{
		Required: true,
		Help:     "JSON script describing the devices and events to replay",
	})
	backend := parser.Selector("b", "backend", []string{"kwin", "wlr", "uinput", "trace"}, &argparse.Options{
		Required: false,
		Help:     "where fake input goes",
		Default:  "kwin",
	})
	display := parser.String("d", "display", &argparse.Options{
		Required: false,
		Help:     "wayland display name, defaults to $WAYLAND_DISPLAY",
		Default:  "",
	})
	uinputPath := parser.String("u", "uinput", &argparse.Options{
		Required: false,
		Help:     "uinput device node",
		Default:  "/dev/uinput",
	})
	width := parser.Int("W", "width", &argparse.Options{
		Required: false,
		Help:     "output width for absolute motion",
		Default:  1920,
	})
	height := parser.Int("H", "height", &argparse.Options{
		Required: false,
		Help:     "output height for absolute motion",
		Default:  1080,
	})
	debug := parser.Flag("D", "debug", &argparse.Options{
		Required: false,
		Help:     "enable debug logging",
	})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logging.Logger = logging.New(os.Stderr, *debug)
	logger = logging.Logger

	s, err := script.LoadFile(*scriptPath)
	if err != nil {
		logger.Fatal(err)
	}

	var roundTrip func() error
	var closer func() error
	switch *backend {
	case "kwin":
		conn, err := kwin.Connect(*display, logger)
		if err != nil {
			logger.Fatal(err)
		}
		closer, roundTrip = conn.Close, conn.RoundTrip
		global, ok := conn.FakeInputGlobal()
		if !ok {
			logger.Warnf("compositor does not announce %s, XTest devices keep their default delivery", fakeinput.InterfaceName)
			break
		}
		xtest.Override(s.Screen, conn, global.Name, global.Version, logger)
	case "wlr":
		vi, err := wlr.New(context.Background(), *width, *height, logger)
		if err != nil {
			logger.Fatal(err)
		}
		closer = vi.Close
		xtest.Override(s.Screen, staticBinder{vi}, s.Global.Name, s.Global.Version, logger)
	case "uinput":
		dev, err := uinput.Open(*uinputPath, *width, *height, logger)
		if err != nil {
			logger.Fatal(err)
		}
		closer = dev.Close
		xtest.Override(s.Screen, staticBinder{dev}, s.Global.Name, s.Global.Version, logger)
	case "trace":
		xtest.Override(s.Screen, &traceBinder{logger: logger}, s.Global.Name, s.Global.Version, logger)
	}

	replay(s)

	if roundTrip != nil {
		if err := roundTrip(); err != nil {
			logger.Error(err)
		}
	}
	if closer != nil {
		if err := closer(); err != nil {
			logger.Error(err)
		}
	}
}

// replay delivers every scripted event to its device in order.
func replay(s *script.Script) {
	for _, step := range s.Steps {
		ev := step.Event
		if !s.Screen.Device(step.Device).Deliver(&ev) {
			logger.Debugf("%s: %s dropped, no event sink", step.Device, ev.Type)
		}
	}
	logger.Infof("replayed %d events", len(s.Steps))
}
