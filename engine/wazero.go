package engine

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-builder/errors"
	"github.com/wippyai/wasm-builder/wasm"
)

// Engine owns a wazero runtime and the host modules registered in it.
type Engine struct {
	runtime wazero.Runtime
	hosts   map[string]*hostModule
	order   []string
	mu      sync.Mutex
}

// Config holds configuration for engine creation
type Config struct {
	// MemoryLimitPages sets the maximum memory per instance in pages (64KB each).
	// 0 means default (65536 pages = 4GB).
	// 256 = 16MB, 1024 = 64MB, 4096 = 256MB
	MemoryLimitPages uint32
}

type hostModule struct {
	funcs map[string]HostFunc
	names []string
	live  bool
}

// HostFunc is a Go function exposed to guests as module.name.
type HostFunc struct {
	Fn      api.GoModuleFunc
	Module  string
	Name    string
	Params  []wasm.ValueType
	Results []wasm.ValueType
}

// FuncInfo describes an exported function.
type FuncInfo struct {
	Name    string
	Params  []wasm.ValueType
	Results []wasm.ValueType
}

// Signature renders the function type as "(i32, i32) -> i32".
func (f FuncInfo) Signature() string {
	ft := wasm.FuncOf(f.Params...)
	if len(f.Results) == 1 {
		ft = ft.Returning(f.Results[0])
	}
	return ft.String()
}

// New creates an engine. A nil cfg uses defaults.
func New(ctx context.Context, cfg *Config) (*Engine, error) {
	runtimeCfg := wazero.NewRuntimeConfig().WithCoreFeatures(api.CoreFeaturesV1)
	if cfg != nil && cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}

	return &Engine{
		runtime: wazero.NewRuntimeWithConfig(ctx, runtimeCfg),
		hosts:   make(map[string]*hostModule),
	}, nil
}

// Close releases the runtime and every instance loaded from it.
func (e *Engine) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// DefineHostFunc declares a host function. It becomes visible to guests at
// the next Load.
func (e *Engine) DefineHostFunc(module, name string, fn api.GoModuleFunc, params, results []wasm.ValueType) error {
	if fn == nil {
		return errors.Registration(module, name, fmt.Errorf("nil function"))
	}
	if len(results) > 1 {
		return errors.Registration(module, name, fmt.Errorf("%d results, at most 1 allowed", len(results)))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	host, ok := e.hosts[module]
	if !ok {
		host = &hostModule{funcs: make(map[string]HostFunc)}
		e.hosts[module] = host
		e.order = append(e.order, module)
	}
	if host.live {
		return errors.Registration(module, name, fmt.Errorf("host module %q is already instantiated", module))
	}
	if _, dup := host.funcs[name]; dup {
		return errors.Duplicate(errors.PhaseHost, "host function", module+"."+name)
	}

	host.funcs[name] = HostFunc{
		Fn:      fn,
		Module:  module,
		Name:    name,
		Params:  append([]wasm.ValueType(nil), params...),
		Results: append([]wasm.ValueType(nil), results...),
	}
	host.names = append(host.names, name)
	Logger().Debug("host function defined", zap.String("module", module), zap.String("name", name))
	return nil
}

// instantiateHosts builds every host module that is not live yet.
func (e *Engine) instantiateHosts(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, name := range e.order {
		host := e.hosts[name]
		if host.live {
			continue
		}
		builder := e.runtime.NewHostModuleBuilder(name)
		for _, fnName := range host.names {
			f := host.funcs[fnName]
			builder.NewFunctionBuilder().
				WithGoModuleFunction(f.Fn, toAPITypes(f.Params), toAPITypes(f.Results)).
				Export(fnName)
		}
		if _, err := builder.Instantiate(ctx); err != nil {
			return errors.Registration(name, "*", err)
		}
		host.live = true
		Logger().Debug("host module instantiated", zap.String("module", name), zap.Int("functions", len(host.names)))
	}
	return nil
}

// Compile checks that bin is a module the runtime accepts, without
// instantiating it.
func (e *Engine) Compile(ctx context.Context, bin []byte) error {
	compiled, err := e.runtime.CompileModule(ctx, bin)
	if err != nil {
		return errors.Wrap(errors.PhaseRuntime, errors.KindInstantiation, err, "compile module")
	}
	return compiled.Close(ctx)
}

// Load compiles bin, links it against the host modules and instantiates it
// under name. The module's start function runs during Load.
func (e *Engine) Load(ctx context.Context, bin []byte, name string) (*Instance, error) {
	if err := e.instantiateHosts(ctx); err != nil {
		return nil, err
	}

	compiled, err := e.runtime.CompileModule(ctx, bin)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseRuntime, errors.KindInstantiation, err, "compile module")
	}

	mod, err := e.runtime.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(name))
	if err != nil {
		compiled.Close(ctx)
		return nil, errors.Instantiation(err)
	}

	inst := &Instance{
		module:   mod,
		compiled: compiled,
		funcs:    make(map[string]api.Function),
	}
	Logger().Debug("module loaded",
		zap.String("name", name),
		zap.Int("size", len(bin)),
		zap.Int("exports", len(compiled.ExportedFunctions())))
	return inst, nil
}

// Instance is an instantiated module.
type Instance struct {
	module   api.Module
	compiled wazero.CompiledModule
	funcs    map[string]api.Function
}

// Exports lists the exported functions sorted by name.
func (i *Instance) Exports() []FuncInfo {
	defs := i.compiled.ExportedFunctions()
	out := make([]FuncInfo, 0, len(defs))
	for name, def := range defs {
		out = append(out, FuncInfo{
			Name:    name,
			Params:  fromAPITypes(def.ParamTypes()),
			Results: fromAPITypes(def.ResultTypes()),
		})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out
}

// Func returns the description of an exported function.
func (i *Instance) Func(name string) (FuncInfo, bool) {
	def, ok := i.compiled.ExportedFunctions()[name]
	if !ok {
		return FuncInfo{}, false
	}
	return FuncInfo{
		Name:    name,
		Params:  fromAPITypes(def.ParamTypes()),
		Results: fromAPITypes(def.ResultTypes()),
	}, true
}

// Call invokes an exported function with raw stack values.
func (i *Instance) Call(ctx context.Context, name string, args ...uint64) ([]uint64, error) {
	fn, ok := i.funcs[name]
	if !ok {
		fn = i.module.ExportedFunction(name)
		if fn == nil {
			return nil, errors.NotFound(errors.PhaseRuntime, "export", name)
		}
		i.funcs[name] = fn
	}

	if want := len(fn.Definition().ParamTypes()); len(args) != want {
		return nil, errors.Mismatch(errors.PhaseRuntime, []string{"exports", name}, "argument count", len(args), want)
	}

	results, err := fn.Call(ctx, args...)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseRuntime, errors.KindTrap, err, "call "+name)
	}
	Logger().Debug("export called", zap.String("name", name), zap.Uint64s("args", args), zap.Uint64s("results", results))
	return results, nil
}

// Global reads an exported global's raw value.
func (i *Instance) Global(name string) (uint64, bool) {
	g := i.module.ExportedGlobal(name)
	if g == nil {
		return 0, false
	}
	return g.Get(), true
}

// ReadMemory copies n bytes at offset from the exported memory name.
func (i *Instance) ReadMemory(name string, offset, n uint32) ([]byte, bool) {
	mem := i.module.ExportedMemory(name)
	if mem == nil {
		return nil, false
	}
	buf, ok := mem.Read(offset, n)
	if !ok {
		return nil, false
	}
	return append([]byte(nil), buf...), true
}

// Close releases the instance and its compiled module.
func (i *Instance) Close(ctx context.Context) error {
	err := i.module.Close(ctx)
	if cerr := i.compiled.Close(ctx); err == nil {
		err = cerr
	}
	return err
}
