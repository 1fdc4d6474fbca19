package generator

import (
	"fmt"
	"regexp"

	"github.com/blimu-dev/tseo-gen/pkg/ir"
)

// FilterIndex keeps the operations whose tags pass the include and exclude
// patterns. Groups left without operations are dropped; order is kept.
func FilterIndex(idx ir.Index, includeTags, excludeTags []string) (ir.Index, error) {
	if len(includeTags) == 0 && len(excludeTags) == 0 {
		return idx, nil
	}
	include, exclude, err := compileTagFilters(includeTags, excludeTags)
	if err != nil {
		return ir.Index{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	filtered := ir.NewIndex()
	for name, desc := range idx.TagDescriptions {
		filtered.TagDescriptions[name] = desc
	}
	for _, g := range idx.TagGroups() {
		for _, op := range g.All() {
			if shouldIncludeOperation(op.Tags, include, exclude) {
				filtered.Add(g.Name, op)
			}
		}
	}
	return filtered, nil
}

// compileTagFilters compiles regex patterns for tag filtering
func compileTagFilters(include, exclude []string) ([]*regexp.Regexp, []*regexp.Regexp, error) {
	compile := func(kind string, patterns []string) ([]*regexp.Regexp, error) {
		out := make([]*regexp.Regexp, 0, len(patterns))
		for _, p := range patterns {
			r, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("invalid %s pattern %q: %w", kind, p, err)
			}
			out = append(out, r)
		}
		return out, nil
	}
	inc, err := compile("includeTags", include)
	if err != nil {
		return nil, nil, err
	}
	exc, err := compile("excludeTags", exclude)
	if err != nil {
		return nil, nil, err
	}
	return inc, exc, nil
}

// shouldIncludeOperation reports whether any of the tags matches an include
// pattern (or there are none) and none of them matches an exclude pattern.
func shouldIncludeOperation(tags []string, include, exclude []*regexp.Regexp) bool {
	if len(include) > 0 && !anyMatch(tags, include) {
		return false
	}
	return !anyMatch(tags, exclude)
}

func anyMatch(tags []string, patterns []*regexp.Regexp) bool {
	for _, tag := range tags {
		for _, r := range patterns {
			if r.MatchString(tag) {
				return true
			}
		}
	}
	return false
}
