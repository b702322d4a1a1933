// Package huffman implements static (non-adaptive) Huffman coding as a
// file-level codec: a frequency pass, a priority-selected binary tree, and
// a container format that stores the serialized tree next to the encoded
// payload so the decoder never has to guess at symbol probabilities.
package huffman

import (
	"encoding/binary"
	"os"

	"go.uber.org/zap"

	"github.com/robertkibet/gocompress"
)

// Codec is the Huffman compressor/decompressor. The zero value is ready
// to use; Logger defaults to a no-op logger.
type Codec struct {
	Logger *zap.Logger
}

var _ gocompress.Codec = (*Codec)(nil)

func (c *Codec) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// Compress reads inputPath and writes its Huffman-encoded form to
// outputPath.
func (c *Codec) Compress(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return gocompress.NewIOError("read", inputPath, err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return gocompress.NewIOError("create output", outputPath, err)
	}
	defer out.Close()

	if len(data) == 0 {
		if err := writeUint32(out, outputPath, 0); err != nil {
			return err
		}
		c.logger().Info("huffman compress complete (empty input)",
			zap.String("input", inputPath), zap.String("output", outputPath))
		return nil
	}

	var freq [256]uint32
	for _, b := range data {
		freq[b]++
	}

	distinct, singleValue := distinctSymbol(freq)
	if distinct == 1 {
		if err := writeUint32(out, outputPath, uint32(len(data))); err != nil {
			return err
		}
		if _, err := out.Write([]byte{singleValue}); err != nil {
			return gocompress.NewIOError("write", outputPath, err)
		}
		c.logger().Info("huffman compress complete (single symbol)",
			zap.String("input", inputPath), zap.String("output", outputPath),
			zap.Int64("original_size", int64(len(data))))
		return nil
	}

	nodes, root := buildTree(freq)
	codes := generateCodes(nodes, root)

	var treePacker bitPacker
	serializeTree(&treePacker, nodes, root)
	treeBytes, treeBits := treePacker.finish()

	var payloadPacker bitPacker
	for _, b := range data {
		payloadPacker.writeCode(codes[b])
	}
	payloadBytes, payloadBits := payloadPacker.finish()

	if err := writeUint32(out, outputPath, uint32(len(data))); err != nil {
		return err
	}
	if err := writeUint32(out, outputPath, uint32(treeBits)); err != nil {
		return err
	}
	if _, err := out.Write(treeBytes); err != nil {
		return gocompress.NewIOError("write", outputPath, err)
	}
	if err := writeUint32(out, outputPath, uint32(payloadBits)); err != nil {
		return err
	}
	if _, err := out.Write(payloadBytes); err != nil {
		return gocompress.NewIOError("write", outputPath, err)
	}

	c.logger().Info("huffman compress complete",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Int64("original_size", int64(len(data))),
		zap.Int64("compressed_size", gocompress.FileSize(outputPath)),
	)
	return nil
}

// Decompress reads a Huffman file and writes the decoded original bytes
// to outputPath.
func (c *Codec) Decompress(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return gocompress.NewIOError("read", inputPath, err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return gocompress.NewIOError("create output", outputPath, err)
	}
	defer out.Close()

	if len(data) < 4 {
		return gocompress.ErrTruncatedHeader
	}
	originalSize := binary.LittleEndian.Uint32(data[0:4])

	if originalSize == 0 {
		c.logger().Info("huffman decompress complete (empty output)",
			zap.String("input", inputPath), zap.String("output", outputPath))
		return nil
	}

	if len(data) < 8 {
		if len(data) != 5 {
			return gocompress.ErrTruncatedHeader
		}
		single := data[4]
		buf := make([]byte, originalSize)
		for i := range buf {
			buf[i] = single
		}
		if _, err := out.Write(buf); err != nil {
			return gocompress.NewIOError("write", outputPath, err)
		}
		return nil
	}

	treeBits := int(binary.LittleEndian.Uint32(data[4:8]))
	offset := 8
	treeByteLen := (treeBits + 7) / 8
	if offset+treeByteLen+4 > len(data) {
		return gocompress.ErrTruncatedTree
	}
	treeBytes := data[offset : offset+treeByteLen]
	offset += treeByteLen

	payloadBits := int(binary.LittleEndian.Uint32(data[offset : offset+4]))
	offset += 4
	payloadByteLen := (payloadBits + 7) / 8
	if offset+payloadByteLen > len(data) {
		return gocompress.ErrCorruptPayload
	}
	payloadBytes := data[offset : offset+payloadByteLen]

	nodes, root, err := deserializeTree(newBitUnpacker(treeBytes, treeBits))
	if err != nil {
		return err
	}

	decoded := make([]byte, 0, originalSize)
	unpacker := newBitUnpacker(payloadBytes, payloadBits)
	current := root
	for len(decoded) < int(originalSize) {
		bit, ok := unpacker.readBit()
		if !ok {
			return gocompress.ErrCorruptPayload
		}
		if bit == 0 {
			current = nodes[current].left
		} else {
			current = nodes[current].right
		}
		if current < 0 {
			return gocompress.ErrCorruptPayload
		}
		if nodes[current].isLeaf() {
			decoded = append(decoded, nodes[current].value)
			current = root
		}
	}

	if _, err := out.Write(decoded); err != nil {
		return gocompress.NewIOError("write", outputPath, err)
	}

	c.logger().Info("huffman decompress complete",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Int64("compressed_size", int64(len(data))),
		zap.Int64("decompressed_size", int64(len(decoded))),
	)
	return nil
}

// IsValid performs a deliberately cheap check: the file exists and is at
// least large enough to hold the original_size header field. It does not
// attempt to decode.
func (c *Codec) IsValid(path string) bool {
	if !gocompress.FileExists(path) {
		return false
	}
	return gocompress.FileSize(path) >= 4
}

func distinctSymbol(freq [256]uint32) (count int, value byte) {
	for b := 0; b < 256; b++ {
		if freq[b] > 0 {
			count++
			value = byte(b)
		}
	}
	return count, value
}

func serializeTree(p *bitPacker, nodes []node, idx int32) {
	n := nodes[idx]
	if n.isLeaf() {
		p.writeBit(1)
		p.writeByte(n.value)
		return
	}
	p.writeBit(0)
	serializeTree(p, nodes, n.left)
	serializeTree(p, nodes, n.right)
}

func deserializeTree(u *bitUnpacker) ([]node, int32, error) {
	nodes := make([]node, 0, 511)
	root, err := deserializeNode(u, &nodes)
	if err != nil {
		return nil, 0, err
	}
	return nodes, root, nil
}

func deserializeNode(u *bitUnpacker, nodes *[]node) (int32, error) {
	tag, ok := u.readBit()
	if !ok {
		return -1, gocompress.ErrTruncatedTree
	}
	if tag == 1 {
		value, ok := u.readByte()
		if !ok {
			return -1, gocompress.ErrTruncatedTree
		}
		*nodes = append(*nodes, node{value: value, left: -1, right: -1})
		return int32(len(*nodes) - 1), nil
	}

	left, err := deserializeNode(u, nodes)
	if err != nil {
		return -1, err
	}
	right, err := deserializeNode(u, nodes)
	if err != nil {
		return -1, err
	}
	*nodes = append(*nodes, node{left: left, right: right})
	return int32(len(*nodes) - 1), nil
}

func writeUint32(out *os.File, path string, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	if _, err := out.Write(b[:]); err != nil {
		return gocompress.NewIOError("write", path, err)
	}
	return nil
}
