package timetable

import (
	"sort"
	"strings"
)

type trieNode struct {
	children map[rune]*trieNode
	terminal bool
	word     string
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// Trie is a prefix index over a single lookup domain (course strings or
// room strings). All input is folded to upper case, so queries are
// case-insensitive and stored words come back upper-cased.
type Trie struct {
	root *trieNode
	size int
}

// NewTrie returns an empty prefix index.
func NewTrie() *Trie {
	return &Trie{root: newTrieNode()}
}

// Insert adds a word to the index. Inserting an already-present word is a
// no-op, so multiplicities stay at one per distinct string.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}
	word = strings.ToUpper(word)

	current := t.root
	for _, ch := range word {
		child, ok := current.children[ch]
		if !ok {
			child = newTrieNode()
			current.children[ch] = child
		}
		current = child
	}
	if !current.terminal {
		current.terminal = true
		current.word = word
		t.size++
	}
}

// Exists reports whether the exact word is stored.
func (t *Trie) Exists(word string) bool {
	if word == "" {
		return false
	}
	node := t.findNode(strings.ToUpper(word))
	return node != nil && node.terminal
}

// HasPrefix reports whether at least one stored word starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	if prefix == "" {
		return false
	}
	return t.findNode(strings.ToUpper(prefix)) != nil
}

// Enumerate returns every stored word starting with prefix, sorted
// lexicographically.
func (t *Trie) Enumerate(prefix string) []string {
	results := []string{}
	if prefix == "" {
		return results
	}

	node := t.findNode(strings.ToUpper(prefix))
	if node == nil {
		return results
	}

	collectWords(node, &results)
	sort.Strings(results)
	return results
}

// Delete removes a word and prunes branches left without terminals or
// children. It reports whether the word was present.
func (t *Trie) Delete(word string) bool {
	if word == "" {
		return false
	}
	runes := []rune(strings.ToUpper(word))

	deleted := false
	var walk func(node *trieNode, depth int) bool
	walk = func(node *trieNode, depth int) bool {
		if depth == len(runes) {
			if !node.terminal {
				return false
			}
			node.terminal = false
			node.word = ""
			deleted = true
			return len(node.children) == 0
		}

		ch := runes[depth]
		child, ok := node.children[ch]
		if !ok {
			return false
		}
		if walk(child, depth+1) {
			delete(node.children, ch)
			return len(node.children) == 0 && !node.terminal
		}
		return false
	}
	walk(t.root, 0)

	if deleted {
		t.size--
	}
	return deleted
}

// Len returns the number of stored words.
func (t *Trie) Len() int {
	return t.size
}

func (t *Trie) findNode(word string) *trieNode {
	current := t.root
	for _, ch := range word {
		child, ok := current.children[ch]
		if !ok {
			return nil
		}
		current = child
	}
	return current
}

func collectWords(node *trieNode, results *[]string) {
	if node.terminal {
		*results = append(*results, node.word)
	}
	for _, child := range node.children {
		collectWords(child, results)
	}
}
