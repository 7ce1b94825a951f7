package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"SharedSlate/internal/command"
	"SharedSlate/internal/config"
	"SharedSlate/internal/export"
	"SharedSlate/internal/geom"
	"SharedSlate/internal/logging"
	slatenet "SharedSlate/internal/net"
	"SharedSlate/internal/session"
	"SharedSlate/internal/state"
	"SharedSlate/internal/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "sharedslate.yaml", "path to the config file")
		joinAddr   = flag.String("join", "", "join a hub at host:port instead of hosting")
		sessionID  = flag.String("session", "classroom", "whiteboard session id")
		exportPath = flag.String("export", "", "render a stored session to this PDF and exit")
		discover   = flag.Bool("discover", false, "list hubs advertised on the LAN and exit")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	log, closeLog, err := logging.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(log)

	switch {
	case *discover:
		return runDiscover()
	case *exportPath != "":
		return runExport(cfg, *sessionID, *exportPath)
	case *joinAddr != "":
		return runJoin(cfg, log, *joinAddr, *sessionID)
	default:
		return runHost(cfg, log)
	}
}

// runHost serves the hub: relays session snapshots between participants,
// persists the latest one per session, and advertises itself on the LAN.
func runHost(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	snapshots, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer snapshots.Close()

	hub := slatenet.NewHub(snapshots, log)

	if port := listenPort(cfg.Listen); port > 0 {
		if srv, err := slatenet.Advertise(port); err != nil {
			log.Warn("mDNS advertise failed, continuing without discovery", "err", err)
		} else {
			defer srv.Shutdown()
		}
		if ip, err := slatenet.OutgoingIP(); err == nil {
			log.Info("share this address with participants", "addr", fmt.Sprintf("%s:%d", ip, port))
		}
	}

	return hub.Serve(ctx, cfg.Listen)
}

// runJoin connects to a hub as one participant and feeds drawing commands
// from stdin (one JSON command per line) through the translator into the
// shared document.
func runJoin(cfg config.Config, log *slog.Logger, hubAddr, sessionID string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	participant := uuid.NewString()
	client := slatenet.NewClient(hubAddr, participant, log)
	defer client.Close()

	docs := state.NewDocStore(log)
	defer docs.Dispose()

	ch := session.NewChannel(session.Config{
		SessionID:    sessionID,
		Quiescence:   config.Duration(cfg.Sync.Quiescence, session.DefaultQuiescence),
		MaxWait:      config.Duration(cfg.Sync.MaxWait, session.DefaultMaxWait),
		HeartbeatTTL: config.Duration(cfg.Sync.HeartbeatTTL, session.DefaultHeartbeatTTL),
	}, store.NewBreaker(store.NewMemory()), client, docs, log)
	defer ch.Close()

	if err := ch.Start(ctx); err != nil {
		return err
	}
	ch.Attach(participant)
	defer ch.Detach(participant)

	engine := geom.NewEngine(geom.Config{
		LogicalWidth:  cfg.Logical.Width,
		LogicalHeight: cfg.Logical.Height,
	}, nil)
	translator := command.NewTranslator(engine, cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.SafeMargin, log)
	translator.HandwrittenText = cfg.Sync.HandwrittenText

	log.Info("joined; reading drawing commands from stdin", "session", sessionID, "participant", participant)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var cmd command.Command
		if err := json.Unmarshal([]byte(line), &cmd); err != nil {
			log.Warn("skipping malformed command", "err", err)
			continue
		}
		elements := translator.Translate(cmd)
		if len(elements) == 0 {
			continue
		}
		doc := docs.ApplyLocalEdit(state.Delta{Upsert: elements})
		ch.Heartbeat(participant)
		log.Info("applied", "revision", doc.Revision, "elements", len(doc.Elements), "status", ch.Status())

		select {
		case <-ctx.Done():
			return nil
		default:
		}
	}
	return scanner.Err()
}

// runExport renders a stored session's document to PDF.
func runExport(cfg config.Config, sessionID, outPath string) error {
	snapshots, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer snapshots.Close()

	doc, err := snapshots.Load(context.Background(), sessionID)
	if err != nil {
		return err
	}
	if err := export.PDF(outPath, doc); err != nil {
		return err
	}
	slog.Info("exported", "session", sessionID, "path", outPath, "elements", len(doc.Elements))
	return nil
}

func runDiscover() error {
	found := false
	err := slatenet.Browse(func(addr string) {
		found = true
		fmt.Println(addr)
	})
	if err != nil {
		return err
	}
	if !found {
		fmt.Println("no hubs found")
	}
	return nil
}

// listenPort extracts the numeric port from an addr like ":8888".
func listenPort(addr string) int {
	idx := strings.LastIndexByte(addr, ':')
	if idx < 0 {
		return 0
	}
	var port int
	fmt.Sscanf(addr[idx+1:], "%d", &port)
	return port
}
