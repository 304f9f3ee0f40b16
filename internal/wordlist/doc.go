// Package wordlist loads wordlist files and parses the CLI's
// "path:identifier" file specs.
//
// A wordlist file is strictly line-oriented: every line becomes one opaque
// UTF-8 substitution value, with no trimming, de-duplication or other
// transformation. What the file says is what gets substituted.
package wordlist
