// susen.go - a web-based Sudoku game and teaching tool.
// Copyright (C) 2015 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

package slant

// maxRuleIterations bounds the rule runner against any pathological
// board that could otherwise cycle forever between rules that each
// claim progress without ever converging.
const maxRuleIterations = 1000

// filterRulesByTier returns the rules whose Tier does not exceed
// maxTier, preserving Rules' order.
func filterRulesByTier(maxTier int) []Rule {
	var filtered []Rule
	for _, r := range Rules {
		if r.Tier <= maxTier {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// applyRulesUntilStuck is the rule-application loop SolveBF runs
// after every guess and every backtrack. It repeatedly scans rules
// from the top, applying the first one that makes progress and then
// restarting the scan, so any rule can fire again once an earlier one
// changes the board. It stops when a full pass makes no progress, the
// board becomes invalid, the board is solved, or maxRuleIterations
// outer passes have run. It returns the accumulated work score and
// the highest rule tier that actually fired.
//
// SolvePR uses its own, near-identical loop instead of this one: see
// the comment on SolvePR for why the two aren't shared.
func applyRulesUntilStuck(b *Board, rules []Rule) (workScore, maxTierUsed int) {
	for iteration := 0; iteration < maxRuleIterations; iteration++ {
		if b.IsSolved() || !b.IsValid() {
			break
		}
		madeProgress := false
		for _, rule := range rules {
			if rule.Func(b) {
				workScore += rule.Score
				if rule.Tier > maxTierUsed {
					maxTierUsed = rule.Tier
				}
				madeProgress = true
				break
			}
		}
		if !madeProgress {
			break
		}
	}
	return workScore, maxTierUsed
}
