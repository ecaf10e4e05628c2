// Package web captures the keyboard of a browser page when the program is
// built for js/wasm.
//
// Key events are translated from the key and location properties of the DOM
// KeyboardEvent. The location is what distinguishes the left and right
// modifier keys, and the numeric keypad from the main keyboard. TranslateKey()
// is available on every platform so that other front ends receiving DOM key
// names, for example over a websocket, can use the same table.
package web
