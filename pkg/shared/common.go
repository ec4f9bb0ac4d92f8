package shared

import (
	"sync"

	"github.com/spf13/pflag"
)

// ForEveryStringWithBoundedGoroutines runs f for every value with at most
// limit goroutines in flight.
func ForEveryStringWithBoundedGoroutines(limit int, values []string, f func(i int, value string)) {
	guard := make(chan struct{}, limit)
	var wg sync.WaitGroup
	for i, value := range values {
		guard <- struct{}{} // would block if guard channel is already filled
		wg.Add(1)
		go func(i int, value string) {
			defer wg.Done()
			f(i, value)
			<-guard
		}(i, value)
	}
	wg.Wait()
}

// HasFlags reports whether any flag in the set was changed on the command line.
func HasFlags(flags *pflag.FlagSet) bool {
	changed := false
	flags.Visit(func(*pflag.Flag) { changed = true })
	return changed
}
