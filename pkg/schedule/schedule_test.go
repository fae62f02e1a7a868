package schedule

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"
)

func TestRoundRobinProperties(t *testing.T) {
	g := NewWithT(t)

	for n := 4; n <= 24; n += 2 {
		weeks, err := RoundRobin(n)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(weeks).To(HaveLen(n - 1))

		pairSeen := make(map[[2]int]bool)
		for w, matches := range weeks {
			g.Expect(matches).To(HaveLen(n / 2))

			playedThisWeek := make(map[int]bool)
			for _, match := range matches {
				g.Expect(match.Week).To(Equal(w + 1))
				g.Expect(match.Home).To(And(BeNumerically(">=", 1), BeNumerically("<=", n)))
				g.Expect(match.Away).To(And(BeNumerically(">=", 1), BeNumerically("<=", n)))
				g.Expect(match.Home).NotTo(Equal(match.Away))

				// One match per team per week.
				g.Expect(playedThisWeek[match.Home]).To(BeFalse())
				g.Expect(playedThisWeek[match.Away]).To(BeFalse())
				playedThisWeek[match.Home] = true
				playedThisWeek[match.Away] = true

				// Round-robin completeness: each unordered pair once.
				key := [2]int{min(match.Home, match.Away), max(match.Home, match.Away)}
				g.Expect(pairSeen[key]).To(BeFalse())
				pairSeen[key] = true
			}
		}
		g.Expect(pairSeen).To(HaveLen(n * (n - 1) / 2))
	}
}

func TestRoundRobinDeterministic(t *testing.T) {
	g := NewWithT(t)

	for _, n := range []int{4, 8, 14} {
		first, err := RoundRobin(n)
		g.Expect(err).NotTo(HaveOccurred())
		second, err := RoundRobin(n)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(second).To(Equal(first))
	}
}

func TestRoundRobinRejectsInvalidInstances(t *testing.T) {
	g := NewWithT(t)

	for _, n := range []int{-2, 0, 1, 3, 7, 15} {
		_, err := RoundRobin(n)
		var invalid *InvalidInstanceError
		g.Expect(errors.As(err, &invalid)).To(BeTrue(), "n=%v", n)
		g.Expect(invalid.N).To(Equal(n))
	}
}
