// Package learn holds the decision core shared by the learning agents: the
// per-decision GameState, its discrete StateKey and continuous feature
// encodings, tabular and linear action-value functions, exploration
// policies, the hyperparameter Schedule and the SARSA learner tying them
// together.
package learn
