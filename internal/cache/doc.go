// Package cache provides a small generic LRU cache.
//
// The transform engine keeps its cosine basis matrices here so repeated
// transforms of the same size skip the O(n²) cosine evaluation.
//
//	c := cache.New[int, *mat.Dense](32)
//	b := c.GetOrCreate(n, func() *mat.Dense { return build(n) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
