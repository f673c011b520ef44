// Package lists tracks blog post ideas in named lists.
//
// A Collection maps list names to PostLists, and each PostList maps post
// names to Entries carrying completed/in-progress flags, tags and a content
// path. The whole collection is persisted as one YAML file by Store, and
// every Service operation loads it, mutates it in memory and writes it back.
package lists
