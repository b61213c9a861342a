package searcher

// Hyperparameters for the adversarial search

// DefaultDepth is the number of plies explored when no depth option is given.
const DefaultDepth = 6

// Use rewards to bound the leaf evaluation range
const Win = 1.0
const Loss = -Win

// winBase lifts terminal scores above every heuristic leaf value, and the
// remaining depth is added on top so faster wins score higher.
const winBase = 2.0
