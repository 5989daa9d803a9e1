// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim_test

import (
	"fmt"

	ls "github.com/db47h/logicsim"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

// hookAt matches a HookCtx at position pos. A nil item or detail matches
// anything.
type hookAt struct {
	pos    *ls.HookPos
	item   any
	detail any
}

func (m hookAt) Matches(x any) bool {
	ctx, ok := x.(ls.HookCtx)
	if !ok || ctx.Pos != m.pos {
		return false
	}
	if m.item != nil && ctx.Item != m.item {
		return false
	}
	return m.detail == nil || ctx.Detail == m.detail
}

func (m hookAt) String() string {
	return fmt.Sprintf("hook at %s item=%v detail=%v", m.pos.Name, m.item, m.detail)
}

var _ = Describe("Circuit hooks", func() {
	var (
		mockCtrl *gomock.Controller
		hook     *MockHook
		c        *ls.Circuit
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		hook = NewMockHook(mockCtrl)
		c = ls.New(quiet)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should panic when the same hook is added twice", func() {
		c.AcceptHook(hook)
		Expect(func() { c.AcceptHook(hook) }).To(Panic())
		Expect(c.NumHooks()).To(Equal(1))
	})

	It("should accept several function hooks", func() {
		n := 0
		f := ls.HookFunc(func(ls.HookCtx) { n++ })
		c.AcceptHook(f)
		c.AcceptHook(f)
		c.Drain()
		Expect(c.NumHooks()).To(Equal(2))
		Expect(n).To(Equal(4))
	})

	It("should report a drain in order", func() {
		g, hs := c.AddGate(ls.GateSpec{Kind: ls.Or, Invert: true, Inputs: 1})
		in := c.AddWire("in")
		out := c.AddWire("out")
		Expect(c.Connect(g, out)).To(Succeed())
		Expect(c.AddTarget(in, g, hs[0])).To(Succeed())
		Expect(c.Drive(in, ls.High)).To(Succeed())
		c.AcceptHook(hook)

		var id string
		gomock.InOrder(
			hook.EXPECT().Func(hookAt{pos: ls.HookPosDrainStart}).Do(func(ctx ls.HookCtx) {
				r := ctx.Item.(ls.DrainResult)
				id = r.ID
				Expect(r.MaxSteps).To(Equal(20))
				Expect(ctx.Domain).To(BeIdenticalTo(c))
			}),
			hook.EXPECT().Func(hookAt{ls.HookPosWire, out, ls.High}),
			hook.EXPECT().Func(hookAt{ls.HookPosWire, in, ls.High}),
			hook.EXPECT().Func(hookAt{ls.HookPosGateOutput, g, ls.Low}),
			hook.EXPECT().Func(hookAt{ls.HookPosWire, out, ls.Low}),
			hook.EXPECT().Func(hookAt{pos: ls.HookPosDrainEnd}).Do(func(ctx ls.HookCtx) {
				r := ctx.Item.(ls.DrainResult)
				Expect(r.ID).To(Equal(id))
				Expect(r.Settled).To(BeTrue())
				Expect(r.Steps).To(Equal(3))
				Expect(r.Rounds).To(Equal(2))
			}),
		)

		r := c.Drain()
		Expect(r.ID).NotTo(BeEmpty())
		Expect(c.Value(out)).To(Equal(ls.Low))
	})

	It("should report gate output changes on primary inputs", func() {
		g, hs := c.AddGate(ls.GateSpec{Kind: ls.And, Inputs: 2})
		c.AcceptHook(hook)

		hook.EXPECT().Func(hookAt{ls.HookPosGateOutput, g, ls.High})
		Expect(c.SetInput(g, hs[0], ls.High)).To(Succeed())
		Expect(c.SetInput(g, hs[1], ls.High)).To(Succeed())
		Expect(c.Pending()).To(Equal(0))
	})

	It("should report cache degradation and recovery", func() {
		c = ls.New(quiet, ls.WithCacheCeiling(1))
		c.AcceptHook(hook)

		hook.EXPECT().Func(hookAt{pos: ls.HookPosCacheDegraded, item: ls.GateID(0)}).Do(func(ctx ls.HookCtx) {
			st := ctx.Detail.(ls.CacheStats)
			Expect(st.Valid).To(BeFalse())
			Expect(st.Inputs).To(Equal(2))
			Expect(st.Ceiling).To(Equal(1))
		})
		g, hs := c.AddGate(ls.GateSpec{Kind: ls.Or, Inputs: 2})
		Expect(c.Degraded()).To(ConsistOf(g))

		hook.EXPECT().Func(hookAt{pos: ls.HookPosCacheRestored, item: g})
		Expect(c.RemoveInput(g, hs[1])).To(Succeed())
		Expect(c.Degraded()).To(BeEmpty())
	})
})
