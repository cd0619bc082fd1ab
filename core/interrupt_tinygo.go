//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts masks interrupts on the running core. Sections nest:
// interrupts come back when the outermost state is restored.
func disableInterrupts() interrupt.State { return interrupt.Disable() }

func restoreInterrupts(state interrupt.State) { interrupt.Restore(state) }
