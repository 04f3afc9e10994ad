package blue_test

import (
	"fmt"
	"testing"

	"github.com/NaxHPL/blue"
)

type benchUpdatable struct {
	blue.ComponentBase
	n int
}

func (b *benchUpdatable) Update(*blue.UpdateFrame) { b.n++ }

func BenchmarkUpdaterUpdate(b *testing.B) {
	for _, size := range []int{100, 1000, 10000} {
		b.Run(fmt.Sprintf("%d members", size), func(b *testing.B) {
			up := blue.NewUpdater()
			for i := range size {
				u := &benchUpdatable{}
				u.SetUpdateOrder(i % 16)
				up.Register(u)
			}
			f := &blue.UpdateFrame{DeltaTime: 1.0 / 60.0}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				up.Update(f)
			}
		})
	}
}

func BenchmarkRegistryChurn(b *testing.B) {
	up := blue.NewUpdater()
	members := make([]*benchUpdatable, 256)
	for i := range members {
		members[i] = &benchUpdatable{}
	}
	f := &blue.UpdateFrame{DeltaTime: 1.0 / 60.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range members {
			up.Register(m)
		}
		up.Update(f)
		for _, m := range members {
			up.Unregister(m)
		}
		up.Update(f)
	}
}

func BenchmarkCoroutineAdvance(b *testing.B) {
	s := blue.NewCoroutineScheduler()
	for range 1000 {
		s.Start(func(yield func(blue.YieldInstruction) bool) {
			for yield(nil) {
			}
		})
	}
	f := &blue.UpdateFrame{DeltaTime: 1.0 / 60.0}
	s.Update(f)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Update(f)
	}
}

func BenchmarkPoolGetPut(b *testing.B) {
	p := blue.NewPool[benchUpdatable](nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Put(p.Get())
	}
}
