package apprentices

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
    assert.Equal(t, "aura_core.apprentices.file_writer", Normalize("file_writer"))
    assert.Equal(t, "aura_core.apprentices.file_writer", Normalize("aura_core.apprentices.file_writer"))
}

func TestRegistryResolve(t *testing.T) {
    reg := NewRegistry()
    reg.Register(Echo{})

    r, err := reg.Resolve(Normalize("echo"))
    require.NoError(t, err)
    require.NotNil(t, r)

    _, err = reg.Resolve(Normalize("nope"))
    var unknown *UnknownApprenticeError
    require.ErrorAs(t, err, &unknown)
    assert.Equal(t, "aura_core.apprentices.nope", unknown.Name)
}

type describeOnly struct{}

func (describeOnly) Name() string     { return "describe_only" }
func (describeOnly) Describe() string { return `{}` }

func TestRegistryResolveMissingEntrypoint(t *testing.T) {
    reg := NewRegistry()
    reg.Register(describeOnly{})
    _, err := reg.Resolve(Normalize("describe_only"))
    var missing *MissingRunEntrypointError
    require.ErrorAs(t, err, &missing)
}

func TestRegistryCatalogKeepsRegistrationOrder(t *testing.T) {
    reg := NewRegistry()
    reg.Register(FileWriter{})
    reg.Register(Echo{})
    reg.Register(FileReader{})

    cat := reg.Catalog()
    require.Len(t, cat, 3)
    assert.Equal(t, "file_writer", cat[0].Short)
    assert.Equal(t, "echo", cat[1].Short)
    assert.Equal(t, "file_reader", cat[2].Short)
    assert.Equal(t, "aura_core.apprentices.file_writer", cat[0].ID)
    assert.NotEmpty(t, cat[0].Input)
}
