package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"segmeter/host/monitor"
	"segmeter/host/serial"
)

var (
	device  = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	raw     = flag.Bool("raw", false, "Print lines exactly as received")
	timeout = flag.Duration("timeout", 500*time.Millisecond, "Serial read timeout")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	cfg.ReadTimeout = *timeout

	mon, err := monitor.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer mon.Close()

	fmt.Printf("Listening on %s (Ctrl-C to stop)\n", *device)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = mon.Run(ctx, func(ev monitor.Event) {
		ts := time.Now().Format("15:04:05.000")
		if *raw {
			fmt.Printf("%s %s\n", ts, ev.Raw)
			return
		}
		fmt.Printf("%s %s\n", ts, describe(ev))
	})

	fmt.Printf("\n%d lines, %d clipped, %d unrecognised\n", mon.Lines, mon.Clips, mon.Unknown)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func describe(ev monitor.Event) string {
	switch ev.Kind {
	case monitor.Voltage:
		return fmt.Sprintf("%-12s %.3f V", ev.Kind, ev.Value)
	case monitor.Temperature:
		return fmt.Sprintf("%-12s %.1f C", ev.Kind, ev.Value)
	case monitor.Clip:
		return fmt.Sprintf("%-12s %.0f capped at %.0f", ev.Kind, ev.Value, ev.Max)
	case monitor.Sensor:
		return fmt.Sprintf("%-12s now showing %s", ev.Kind, ev.Sensor)
	case monitor.MathDomain:
		return fmt.Sprintf("%-12s no temperature for average %.0f", ev.Kind, ev.Value)
	default:
		return fmt.Sprintf("%-12s %s", ev.Kind, ev.Raw)
	}
}
