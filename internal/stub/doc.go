// Package stub is a local stand-in for the prediction service. It keeps the
// service's request and error contract and scores with a fixed linear model.
package stub
