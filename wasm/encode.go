package wasm

import (
	"io"
	"strconv"

	"github.com/wippyai/wasm-builder/errors"
	"github.com/wippyai/wasm-builder/wasm/internal/binary"
)

// SectionInfo summarizes one section as it would be written.
type SectionInfo struct {
	Name  string
	ID    byte
	Count int // entries; 1 for the start section
	Size  int // payload bytes, excluding id and length prefix
}

var sectionNames = map[byte]string{
	SectionType:     "type",
	SectionImport:   "import",
	SectionFunction: "function",
	SectionTable:    "table",
	SectionMemory:   "memory",
	SectionGlobal:   "global",
	SectionExport:   "export",
	SectionStart:    "start",
	SectionElement:  "element",
	SectionCode:     "code",
	SectionData:     "data",
}

// SectionName returns the name of a section id.
func SectionName(id byte) string {
	if name, ok := sectionNames[id]; ok {
		return name
	}
	return "unknown"
}

type encodedSection struct {
	payload []byte
	id      byte
	count   int
}

// Encode encodes the module to WebAssembly binary format. Every body must
// have been resolved; no other checks are made.
func (m *Module) Encode() ([]byte, error) {
	w := binary.NewWriter()
	if _, err := m.encodeTo(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// WriteTo encodes the module and writes it to dst.
func (m *Module) WriteTo(dst io.Writer) (int64, error) {
	w := binary.NewWriter()
	if _, err := m.encodeTo(w); err != nil {
		return 0, err
	}
	return w.WriteTo(dst)
}

// Sections lists the sections Encode would emit, in order.
func (m *Module) Sections() ([]SectionInfo, error) {
	secs, err := m.sections()
	if err != nil {
		return nil, err
	}
	infos := make([]SectionInfo, len(secs))
	for i, s := range secs {
		infos[i] = SectionInfo{
			ID:    s.id,
			Name:  SectionName(s.id),
			Count: s.count,
			Size:  len(s.payload),
		}
	}
	return infos, nil
}

func (m *Module) encodeTo(w *binary.Writer) (int, error) {
	secs, err := m.sections()
	if err != nil {
		return 0, err
	}
	n := w.WriteU32LE(Magic)
	n += w.WriteU32LE(Version)
	for _, s := range secs {
		n += writeSection(w, s.id, s.payload)
	}
	return n, nil
}

func (m *Module) sections() ([]encodedSection, error) {
	for i := range m.Code {
		if !m.Code[i].resolved {
			return nil, errors.Unresolved([]string{"code", strconv.Itoa(i)})
		}
	}
	for i, imp := range m.Imports {
		if imp.Kind == nil {
			err := errors.InvalidInput(errors.PhaseEncode, "import "+imp.Module+"."+imp.Field+" has no kind")
			err.Path = []string{"imports", strconv.Itoa(i)}
			return nil, err
		}
	}
	for i, exp := range m.Exports {
		if exp.Kind == nil {
			err := errors.InvalidInput(errors.PhaseEncode, "export "+strconv.Quote(exp.Field)+" has no kind")
			err.Path = []string{"exports", strconv.Itoa(i)}
			return nil, err
		}
	}

	imported := m.NumImportedFunctions()
	var secs []encodedSection
	add := func(id byte, count int, fill func(sec *binary.Writer)) {
		if count == 0 {
			return
		}
		sec := binary.NewWriter()
		fill(sec)
		secs = append(secs, encodedSection{id: id, count: count, payload: sec.Bytes()})
	}

	add(SectionType, len(m.Types), func(sec *binary.Writer) {
		sec.WriteU32(uint32(len(m.Types)))
		for _, ft := range m.Types {
			ft.encode(sec)
		}
	})

	add(SectionImport, len(m.Imports), func(sec *binary.Writer) {
		sec.WriteU32(uint32(len(m.Imports)))
		for _, imp := range m.Imports {
			sec.WriteName(imp.Module)
			sec.WriteName(imp.Field)
			sec.Byte(imp.Kind.importKind())
			switch k := imp.Kind.(type) {
			case FunctionImport:
				sec.WriteU32(uint32(k.Type))
			case TableType:
				k.encode(sec)
			case MemoryType:
				k.encode(sec)
			case GlobalType:
				k.encode(sec)
			}
		}
	})

	add(SectionFunction, len(m.Functions), func(sec *binary.Writer) {
		sec.WriteU32(uint32(len(m.Functions)))
		for _, typeIdx := range m.Functions {
			sec.WriteU32(uint32(typeIdx))
		}
	})

	add(SectionTable, len(m.Tables), func(sec *binary.Writer) {
		sec.WriteU32(uint32(len(m.Tables)))
		for _, t := range m.Tables {
			t.encode(sec)
		}
	})

	add(SectionMemory, len(m.Memories), func(sec *binary.Writer) {
		sec.WriteU32(uint32(len(m.Memories)))
		for _, mem := range m.Memories {
			mem.encode(sec)
		}
	})

	add(SectionGlobal, len(m.Globals), func(sec *binary.Writer) {
		sec.WriteU32(uint32(len(m.Globals)))
		for _, g := range m.Globals {
			g.Type.encode(sec)
			g.Init.encode(sec)
		}
	})

	add(SectionExport, len(m.Exports), func(sec *binary.Writer) {
		sec.WriteU32(uint32(len(m.Exports)))
		for _, exp := range m.Exports {
			sec.WriteName(exp.Field)
			sec.Byte(exp.Kind.exportKind())
			sec.WriteU32(exportOrdinal(exp.Kind, imported))
		}
	})

	if m.Start != nil {
		add(SectionStart, 1, func(sec *binary.Writer) {
			sec.WriteU32(m.Start.Resolve(imported).Ordinal())
		})
	}

	add(SectionElement, len(m.Elements), func(sec *binary.Writer) {
		sec.WriteU32(uint32(len(m.Elements)))
		for _, elem := range m.Elements {
			sec.WriteU32(uint32(elem.Table))
			elem.Offset.encode(sec)
			sec.WriteU32(uint32(len(elem.Elems)))
			for _, f := range elem.Elems {
				sec.WriteU32(f.Resolve(imported).Ordinal())
			}
		}
	})

	add(SectionCode, len(m.Code), func(sec *binary.Writer) {
		sec.WriteU32(uint32(len(m.Code)))
		for i := range m.Code {
			m.Code[i].encode(sec)
		}
	})

	add(SectionData, len(m.Data), func(sec *binary.Writer) {
		sec.WriteU32(uint32(len(m.Data)))
		for _, d := range m.Data {
			sec.WriteU32(uint32(d.Memory))
			d.Offset.encode(sec)
			sec.WriteU32(uint32(len(d.Data)))
			sec.WriteBytes(d.Data)
		}
	})

	return secs, nil
}

func exportOrdinal(kind ExportKind, importedFuncs uint32) uint32 {
	switch k := kind.(type) {
	case FunctionSpaceIndex:
		return k.Resolve(importedFuncs).Ordinal()
	case FunctionIndex:
		return k.Space().Resolve(importedFuncs).Ordinal()
	case TableIndex:
		return uint32(k)
	case MemoryIndex:
		return uint32(k)
	case GlobalIndex:
		return uint32(k)
	default:
		return 0
	}
}

func writeSection(w *binary.Writer, id byte, data []byte) int {
	n := w.Byte(id)
	n += w.WriteU32(uint32(len(data)))
	return n + w.WriteBytes(data)
}
