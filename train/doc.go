// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train fits networks to data.
//
// Train shuffles the training rows every epoch, runs mini-batch
// forward/backward/optimise passes and, when configured, evaluates
// held-out loss. If held-out loss gets worse, training stops early and the
// best snapshot is returned.
//
// # Basic Usage
//
//	trained, err := train.Train(network.WithSeed(42), factory, nn.SoftmaxCrossEntropy{},
//	    trainX, trainY, testX, testY,
//	    train.Config{Epochs: 10, EvalEvery: 1, BatchSize: 64, Seed: 42})
package train
