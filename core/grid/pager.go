/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Raytools Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package grid

// PagerWindow returns the page indices of the numbered pager links around
// the current page.
func (g *Grid) PagerWindow() []int {
	return pagerWindow(g.currentPageIndex, g.MaxPages(), g.maxPageButtons)
}

// pagerWindow centers at most maxButtons consecutive pages on current,
// shifting the window inward near either end. maxButtons is floored to 2
// and capped to maxPages.
func pagerWindow(current, maxPages, maxButtons int) []int {
	total := maxButtons
	if total < 2 {
		total = 2
	}
	if total > maxPages {
		total = maxPages
	}

	start := current - total/2
	if start < 0 {
		start = 0
	}
	if maxPages-start < total {
		start = maxPages - total
	}

	pages := make([]int, 0, total)
	for p := start; p < start+total && p < maxPages; p++ {
		pages = append(pages, p)
	}
	return pages
}
