/*
Package logicsim provides a three-valued logic gate simulator.

Signals are Low, High or Invalid. Invalid stands for an unknown or conflicting
level and propagates through gates unless another input decides the output on
its own, like a Low input of an AND gate.

A Gate computes AND, OR or XOR of any number of input ports, optionally with
its output or individual inputs inverted. Gate outputs are memoized per input
combination, up to MaxCacheInputs inputs.

Gates are assembled into a Circuit with wires. A wire has a single source
(a gate output or an external driver) and fans out to gate inputs. Changes are
propagated by Drain in rounds, each wire at most once per round, until the
circuit settles or a step limit is reached:

	c := logicsim.New()
	not, in := c.AddGate(logicsim.GateSpec{Kind: logicsim.Or, Invert: true, Inputs: 1})
	a, out := c.AddWire("a"), c.AddWire("out")
	c.Connect(not, out)
	c.AddTarget(a, not, in[0])
	c.Drive(a, logicsim.High)
	r := c.Drain() // r.Settled == true, out is Low

Circuits with feedback loops, like latches, settle as long as the loop
reaches a stable state. Oscillating loops hit the step limit; see
WithStepFactor and WithMaxSteps.

Packages logiclib and logictest provide common building blocks and testing
helpers. Package trace records drains for inspection.
*/
package logicsim
