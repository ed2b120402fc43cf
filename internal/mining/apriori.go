// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package mining

import (
	"sort"
	"strconv"
	"strings"
)

// basket is the presence matrix for the selected columns, column-major:
// presence[c][r] reports whether row r has item c. Blank cells count as
// absent, so every support is a fraction of the full row count.
type basket struct {
	presence [][]bool
	rows     int
}

// itemset is a sorted set of column indices with its support over the basket.
type itemset struct {
	items   []int
	support float64
}

// candidateRule is a rule over column indices before names are attached.
type candidateRule struct {
	antecedent []int
	consequent []int
	support    float64
	confidence float64
	lift       float64
}

// support counts rows where every item in the set is present.
func (b basket) support(items []int) float64 {
	count := 0
rows:
	for r := 0; r < b.rows; r++ {
		for _, c := range items {
			if !b.presence[c][r] {
				continue rows
			}
		}
		count++
	}
	return float64(count) / float64(b.rows)
}

// itemsetKey canonicalizes a sorted index set for support lookups.
func itemsetKey(items []int) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(item))
	}
	return b.String()
}

// frequentItemsets runs the levelwise Apriori search. Level k candidates are
// joined from level k-1 survivors and discarded before counting when any
// size k-1 subset is infrequent, so a superset of an infrequent set is never
// scanned against the rows.
func frequentItemsets(b basket, nItems int, minSupport float64) ([]itemset, map[string]float64) {
	supports := make(map[string]float64)
	var all []itemset

	var level [][]int
	for c := 0; c < nItems; c++ {
		set := []int{c}
		s := b.support(set)
		if s < minSupport {
			continue
		}
		supports[itemsetKey(set)] = s
		all = append(all, itemset{items: set, support: s})
		level = append(level, set)
	}

	for len(level) > 1 {
		var next [][]int
		for _, candidate := range joinLevel(level) {
			if !allSubsetsFrequent(candidate, supports) {
				continue
			}
			s := b.support(candidate)
			if s < minSupport {
				continue
			}
			supports[itemsetKey(candidate)] = s
			all = append(all, itemset{items: candidate, support: s})
			next = append(next, candidate)
		}
		level = next
	}
	return all, supports
}

// joinLevel merges pairs of same-size sorted sets agreeing on every item but
// the last into one size k+1 candidate each. The level is lexically ordered,
// so sets sharing a prefix are adjacent and each candidate comes out exactly
// once, keeping the next level lexically ordered too.
func joinLevel(level [][]int) [][]int {
	var candidates [][]int
	for i := 0; i < len(level); i++ {
		for j := i + 1; j < len(level); j++ {
			if !prefixJoinable(level[i], level[j]) {
				break
			}
			a := level[i]
			candidate := make([]int, len(a)+1)
			copy(candidate, a)
			candidate[len(a)] = level[j][len(a)-1]
			candidates = append(candidates, candidate)
		}
	}
	return candidates
}

// prefixJoinable reports whether two same-size sorted sets agree on every
// item but the last, with a's last below b's.
func prefixJoinable(a, b []int) bool {
	for i := 0; i < len(a)-1; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return a[len(a)-1] < b[len(b)-1]
}

// allSubsetsFrequent applies the monotonicity prune: every size k-1 subset
// of a size k candidate must already be frequent. Size two candidates join
// two frequent singletons, so they always pass.
func allSubsetsFrequent(candidate []int, supports map[string]float64) bool {
	if len(candidate) <= 2 {
		return true
	}
	sub := make([]int, 0, len(candidate)-1)
	for skip := range candidate {
		sub = sub[:0]
		for i, item := range candidate {
			if i != skip {
				sub = append(sub, item)
			}
		}
		if _, ok := supports[itemsetKey(sub)]; !ok {
			return false
		}
	}
	return true
}

// deriveRules splits every frequent itemset of size two or more into each
// non-trivial antecedent/consequent pair and keeps rules meeting the
// confidence floor. Lift is confidence over the consequent's own support.
// Every subset of a frequent set is frequent, so both lookups always hit.
func deriveRules(sets []itemset, supports map[string]float64, minConfidence float64) []candidateRule {
	var rules []candidateRule
	for _, set := range sets {
		k := len(set.items)
		if k < 2 {
			continue
		}
		for mask := 1; mask < (1<<k)-1; mask++ {
			var antecedent, consequent []int
			for i, item := range set.items {
				if mask&(1<<i) != 0 {
					antecedent = append(antecedent, item)
				} else {
					consequent = append(consequent, item)
				}
			}
			confidence := set.support / supports[itemsetKey(antecedent)]
			if confidence < minConfidence {
				continue
			}
			rules = append(rules, candidateRule{
				antecedent: antecedent,
				consequent: consequent,
				support:    set.support,
				confidence: confidence,
				lift:       confidence / supports[itemsetKey(consequent)],
			})
		}
	}
	return rules
}

// sortRules orders by descending lift, then confidence, then support, then
// the item sets themselves, so equal-strength rules keep one fixed order
// across runs.
func sortRules(rules []candidateRule) {
	sort.Slice(rules, func(i, j int) bool {
		a, b := rules[i], rules[j]
		if a.lift != b.lift {
			return a.lift > b.lift
		}
		if a.confidence != b.confidence {
			return a.confidence > b.confidence
		}
		if a.support != b.support {
			return a.support > b.support
		}
		if la, lb := a.antecedent, b.antecedent; !equalItems(la, lb) {
			return lessItems(la, lb)
		}
		return lessItems(a.consequent, b.consequent)
	})
}

func equalItems(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func lessItems(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
