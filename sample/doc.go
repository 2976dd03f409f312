/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package sample includes samplers for sampling random values
// from different probability distributions.
//
// Package sample provides the Sampler interface
// along with different implementations of this interface.
// Every sampler draws its randomness from a Source, which is
// passed in explicitly, so a seeded or keyed Source gives
// reproducible samples while NewCryptoSource gives fresh entropy.
//
// Implementations of the Sampler interface can be used,
// for instance, to fill a data.Vector with the desired
// random data, which can in turn be binned into a histogram.
package sample
