package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"

	"github.com/NaxHPL/blue"
)

// spinner is a minimal updatable that moves its entity in a circle and
// periodically churns scene membership.
type spinner struct {
	blue.ComponentBase
	speed float64
	angle float64
}

func (sp *spinner) Update(frame *blue.UpdateFrame) {
	sp.angle += sp.speed * frame.DeltaTime
	e := sp.Entity()
	e.Transform.SetPosition(100*sp.angle, 50*sp.angle)
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	coroutineCount := flag.Int("coroutines", 2000, "The number of looping coroutines to start.")
	churn := flag.Int("churn", 100, "Entities destroyed and respawned per frame.")
	profileMode := flag.String("profile", "", "Write a profile: cpu or mem.")
	flag.Parse()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "":
	default:
		log.Fatalf("unknown profile mode %q", *profileMode)
	}

	log.Println("Starting scene stress test...")

	scene := blue.NewScene(blue.NewCamera(1280, 720))

	for i := 0; i < *entityCount; i++ {
		scene.AddEntity(newSpinnerEntity(i))
	}

	for i := 0; i < *coroutineCount; i++ {
		co := scene.Coroutines().Start(loopRoutine(scene))
		co.SetTag("stress")
	}

	report := &Report{
		Duration:   *duration,
		Entities:   *entityCount,
		Coroutines: *coroutineCount,
		Churn:      *churn,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)

	const dt = 1.0 / 60.0
	clock := blue.NewTime()
	deadline := time.Now().Add(*duration)
	startTime := time.Now()
	spawned := *entityCount

	var totalFrames int64
	for time.Now().Before(deadline) {
		clock.Step(dt)

		frameStart := time.Now()
		scene.Update(clock.Frame(scene))
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(frameStart))

		// Churn: destroy random roots and spawn replacements, exercising
		// the registries' pending sets every frame.
		for i := 0; i < *churn; i++ {
			roots := scene.Roots()
			if len(roots) == 0 {
				break
			}
			roots[rand.Intn(len(roots))].Destroy()
		}
		for i := 0; i < *churn; i++ {
			scene.AddEntity(newSpinnerEntity(spawned))
			spawned++
		}

		totalFrames++
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = totalFrames
	report.UpdateTime.Finalize()
	report.LiveEntities = scene.EntityCount()
	report.LiveCoroutines = scene.Coroutines().Len()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

func newSpinnerEntity(i int) *blue.Entity {
	e := blue.NewEntity(fmt.Sprintf("spinner-%d", i))
	e.AddComponent(&spinner{speed: float64(i%10) + 1})
	return e
}

// loopRoutine waits a short scaled delay forever, keeping the coroutine pool
// and the wait-time pool hot.
func loopRoutine(scene *blue.Scene) blue.Routine {
	s := scene.Coroutines()
	return func(yield func(blue.YieldInstruction) bool) {
		for {
			if !yield(s.WaitSeconds(0.05)) {
				return
			}
		}
	}
}
