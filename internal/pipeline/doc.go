// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package pipeline provides streaming Base64 encoding and decoding.
//
// Each run consists of two concurrent stages: a reader stage that reads
// chunks of bounded size from the input and a transcoder stage that
// transforms them and writes the result to the output. The stages are
// connected by a buffered channel, so a slow output throttles reading once
// the channel is full. Memory use is bounded by chunk size and channel
// capacity, independent of the stream length.
//
// Chunk boundaries never affect the output. The transcoder carries partial
// blocks over to the next chunk.
package pipeline
