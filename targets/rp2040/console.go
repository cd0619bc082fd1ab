//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"
)

// consoleWriter sends one diagnostic line over the USB CDC console.
// Output is dropped while no host is attached.
func consoleWriter(msg string) {
	machine.Serial.Write([]byte(msg))
	machine.Serial.Write([]byte("\r\n"))
}

// blinkForever signals a setup failure on the onboard LED.
func blinkForever() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.High()
		time.Sleep(100 * time.Millisecond)
		led.Low()
		time.Sleep(100 * time.Millisecond)
	}
}
