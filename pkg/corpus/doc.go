// Package corpus keeps a library of named training texts in a SQLite database
// so a markov.Model can be rebuilt from the same source material on every run.
package corpus
