package main

import (
	"fmt"

	"github.com/go-softwarelab/common/pkg/types"

	"github.com/kbukum/linqkit/lazy"
	"github.com/kbukum/linqkit/linq"
)

// example runs one query and returns its result as log fields.
type example func(cfg Settings) (map[string]any, error)

var examples = map[string]example{
	examplePrimes: runPrimes,
	exampleJoin:   runJoin,
	exampleGroup:  runGroup,
	exampleLookup: runLookup,
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for j := 2; j*j <= n; j++ {
		if n%j == 0 {
			return false
		}
	}
	return true
}

// runPrimes finds the last prime below the limit with both engines.
func runPrimes(cfg Settings) (map[string]any, error) {
	eager, err := linq.Range(0, cfg.PrimeLimit).Where(isPrime).Last(nil)
	if err != nil {
		return nil, fmt.Errorf("eager primes: %w", err)
	}

	primes := lazy.Range(0, cfg.PrimeLimit).Where(isPrime)
	count := primes.Count(nil)
	last, err := primes.Last(nil)
	if err != nil {
		return nil, fmt.Errorf("lazy primes: %w", err)
	}
	if last != eager {
		return nil, fmt.Errorf("lazy primes: got %d, eager got %d", last, eager)
	}
	return map[string]any{"last": eager, "count": count}, nil
}

type person struct {
	id   int
	name string
}

type pet struct {
	name    string
	ownerID int
}

var (
	people = linq.Of(
		person{1, "Hedlund, Magnus"},
		person{2, "Adams, Terry"},
		person{3, "Weiss, Charlotte"},
	)
	pets = linq.Of(
		pet{"Barley", 2},
		pet{"Boots", 2},
		pet{"Whiskers", 3},
		pet{"Daisy", 1},
	)
)

func personID(p person) int { return p.id }
func petOwner(p pet) int    { return p.ownerID }

// runJoin pairs owners with pets, once flat and once grouped per owner.
func runJoin(Settings) (map[string]any, error) {
	flat := linq.Join(people, pets, personID, petOwner, func(p person, a pet) string {
		return p.name + " - " + a.name
	})
	grouped := linq.GroupJoin(people, pets, personID, petOwner, func(p person, owned *linq.Sequence[pet]) string {
		return fmt.Sprintf("%s: %d", p.name, owned.Count(nil))
	})
	return map[string]any{
		"join":       flat.ToSlice(),
		"group_join": grouped.ToSlice(),
	}, nil
}

// runGroup buckets numbers by remainder and reports the largest bucket.
func runGroup(Settings) (map[string]any, error) {
	groups := linq.GroupBy(linq.Range(1, 20), func(n int) int { return n % 3 })
	sizes := linq.Select(groups.Pairs(), func(p *linq.Pair[int, int]) types.Pair[int, int] {
		return types.Pair[int, int]{Left: p.Key(), Right: p.Values().Len()}
	})
	largest, err := linq.MaxBy(sizes, func(p types.Pair[int, int]) int { return p.Right })
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"groups":  groups.String(),
		"largest": largest.Left,
	}, nil
}

type food struct {
	name string
	kind string
}

// runLookup indexes foods by kind.
func runLookup(Settings) (map[string]any, error) {
	foods := linq.Of(
		food{"apple", "fruit"},
		food{"carrot", "vegetable"},
		food{"banana", "fruit"},
		food{"pear", "fruit"},
	)
	byKind := linq.ToLookupMap(foods,
		func(f food) string { return f.kind },
		func(f food) string { return f.name })
	fruit, err := byKind.Get("fruit").Single(func(name string) bool { return name[0] == 'b' })
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"lookup":  byKind.String(),
		"b_fruit": fruit,
	}, nil
}
