package event

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Versifine/stride/internal/animation"
)

func TestPublishDeliversToSubscriber(t *testing.T) {
	bus := NewBus()
	got := make(chan any, 1)
	bus.Subscribe(EventAnimationState, func(raw any) { got <- raw })

	want := AnimationStateEvent{Tick: 3, From: animation.Idle, To: animation.Walk, Clip: animation.ClipWalk}
	bus.Publish(EventAnimationState, want)
	bus.Wait()

	select {
	case raw := <-got:
		evt, ok := raw.(AnimationStateEvent)
		if !ok || evt != want {
			t.Fatalf("received %#v, want %#v", raw, want)
		}
	default:
		t.Fatal("handler was not called")
	}
}

func TestPublishNoSubscribers(t *testing.T) {
	bus := NewBus()
	bus.Publish("nobody.listens", 1)
	bus.Wait()
}

func TestMultipleSubscribers(t *testing.T) {
	bus := NewBus()
	var count int32
	for i := 0; i < 3; i++ {
		bus.Subscribe(EventJump, func(any) { atomic.AddInt32(&count, 1) })
	}
	bus.Subscribe(EventLand, func(any) { atomic.AddInt32(&count, 100) })

	bus.Publish(EventJump, JumpEvent{Tick: 1})
	bus.Wait()

	if n := atomic.LoadInt32(&count); n != 3 {
		t.Errorf("handlers ran %d times, want 3", n)
	}
}

func TestHandlerPanicIsContained(t *testing.T) {
	bus := NewBus()
	var ran atomic.Bool
	bus.Subscribe(EventLand, func(any) { panic("boom") })
	bus.Subscribe(EventLand, func(any) { ran.Store(true) })

	bus.Publish(EventLand, LandEvent{})
	bus.Wait()

	if !ran.Load() {
		t.Error("second handler should still run")
	}
}

func TestConcurrentSubscribeAndPublish(t *testing.T) {
	bus := NewBus()
	var count int64
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			bus.Subscribe(EventJump, func(any) { atomic.AddInt64(&count, 1) })
		}()
		go func() {
			defer wg.Done()
			bus.Publish(EventJump, JumpEvent{})
		}()
	}
	wg.Wait()
	bus.Wait()

	before := atomic.LoadInt64(&count)
	bus.Publish(EventJump, JumpEvent{})
	bus.Wait()
	if after := atomic.LoadInt64(&count); after-before != 20 {
		t.Errorf("final publish reached %d handlers, want 20", after-before)
	}
}

func TestNilBus(t *testing.T) {
	var bus *Bus
	bus.Subscribe(EventJump, func(any) {})
	bus.Publish(EventJump, JumpEvent{})
	bus.Wait()
}
