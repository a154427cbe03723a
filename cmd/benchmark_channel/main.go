package main

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/darkstalker/frappe"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// Exercises the cross-goroutine half of the kernel: producers feed an
// unbounded queue, the main goroutine samples channel-backed signals. Each
// run is verified for losslessness (set of sequence ids) and, for the single
// producer case, ordering (xxhash of the delivered sequence).

type benchmarkTestConfig struct {
	name        string // friendly name for the test, should be unique
	nProducers  int64  // number of producer goroutines
	nEvents     int64  // events per producer
	sampleEvery int64  // sample the signal once per this many sends (approximate)
	expectedSum int64  // sum of all folded events, for verification
}

func main() {
	log.Print("Starting frappe channel benchmark, please wait...")
	defer log.Print("Finished frappe channel benchmark")

	perfTestCfgs := []benchmarkTestConfig{
		{
			name:        "single producer",
			nProducers:  1,
			nEvents:     1_000_000,
			sampleEvery: 100,
			expectedSum: 499999500000,
		},
		{
			name:        "fan in small",
			nProducers:  4,
			nEvents:     250_000,
			sampleEvery: 100,
			expectedSum: 124999500000,
		},
		{
			name:        "fan in wide",
			nProducers:  64,
			nEvents:     10_000,
			sampleEvery: 10,
			expectedSum: 3199680000,
		},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"test", "producers", "events", "time", "eventRate", "ordered",
	})

	for _, cfg := range perfTestCfgs {
		log.Printf("Running '%s' config", cfg.name)

		rx := frappe.NewReceiver[event]()
		seen := mapset.NewSet[int64]()
		digest := xxhash.New()
		sum := frappe.FoldChannel(int64(0), rx, func(acc int64, ev event) int64 {
			seen.Add(ev.seq)
			fmt.Fprintf(digest, "%d:%d;", ev.producer, ev.seq)
			return acc + ev.payload
		})

		start := time.Now()
		var wg sync.WaitGroup
		for p := int64(0); p < cfg.nProducers; p++ {
			wg.Add(1)
			go func(p int64) {
				defer wg.Done()
				for i := int64(0); i < cfg.nEvents; i++ {
					rx.Send(event{producer: p, seq: p*cfg.nEvents + i, payload: i})
				}
			}(p)
		}

		// sample concurrently with the producers, roughly once per
		// sampleEvery sends overall
		totalEvents := cfg.nProducers * cfg.nEvents
		for i := int64(0); i < totalEvents/cfg.sampleEvery; i++ {
			sum.Sample()
		}
		wg.Wait()
		got := sum.Sample() // final drain
		duration := time.Since(start)

		if got != cfg.expectedSum {
			log.Panicf("'%s': folded sum %d, expected %d", cfg.name, got, cfg.expectedSum)
		}
		if int64(seen.Cardinality()) != totalEvents {
			log.Panicf("'%s': lost events, saw %d of %d", cfg.name, seen.Cardinality(), totalEvents)
		}
		ordered := "n/a"
		if cfg.nProducers == 1 {
			if digest.Sum64() == orderedDigest(cfg.nEvents) {
				ordered = "yes"
			} else {
				ordered = "NO"
			}
		}

		eventRate := float64(totalEvents) / (float64(duration) / float64(time.Second))
		table.Append([]string{
			cfg.name,
			fmt.Sprint(cfg.nProducers),
			humanize.Comma(totalEvents),
			fmt.Sprint(duration),
			humanize.Comma(int64(eventRate)),
			ordered,
		})
	}
	table.Render()
}

type event struct {
	producer int64
	seq      int64
	payload  int64
}

// orderedDigest is the hash of a single producer's events delivered in send
// order.
func orderedDigest(nEvents int64) uint64 {
	digest := xxhash.New()
	for i := int64(0); i < nEvents; i++ {
		fmt.Fprintf(digest, "0:%d;", i)
	}
	return digest.Sum64()
}
