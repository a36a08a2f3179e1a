/*
Package markov provides a small, deterministic, character-level Markov model.

A Model learns, from training text, how often each byte follows every window
of `order` consecutive bytes (a k-gram), and can then sample a plausible next
byte for a k-gram from that learned distribution. Sampling draws from a seeded
pseudo-random Source, so two models built with the same order, seed and call
sequence produce identical output.

The byte value 0 is reserved as NoCharacter. It marks the end of a training
text when recorded as a follower, and "no continuation" when returned by
SampleNext. NUL bytes found in training text are stripped before windowing.

A Model is not safe for concurrent use.
*/
package markov
