// Package huffman implements Huffman coding over arbitrary ordered symbol
// alphabets.  A code tree is built greedily from symbol frequencies, source
// symbols are encoded as strings of '0' and '1' characters, and such strings
// are decoded back by walking the tree one bit at a time.
//
// Codes are NOT canonicalized; the tree itself is the code.  Keep the tree
// (Encoding.Root) around if you need to decode later.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
