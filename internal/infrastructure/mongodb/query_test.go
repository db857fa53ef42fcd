package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/rrcaps-api/internal/domain/repository"
)

func fptr(v float64) *float64 { return &v }

func TestBuildCapFilter_Vacio(t *testing.T) {
	filter := buildCapFilter(repository.CapFilter{})
	assert.Empty(t, filter, "sin criterios el filtro debe ser vacío (match de todo)")
}

func TestBuildCapFilter_NombreEsSubstringCaseInsensitive(t *testing.T) {
	filter := buildCapFilter(repository.CapFilter{Name: "Yankees"})

	re, ok := filter["name"].(primitive.Regex)
	require.True(t, ok, "name debe filtrarse por regex")
	assert.Equal(t, "Yankees", re.Pattern)
	assert.Equal(t, "i", re.Options)
}

// Los metacaracteres del término se escapan: el cliente no inyecta patrones.
func TestBuildCapFilter_TerminoConMetacaracteresEscapado(t *testing.T) {
	filter := buildCapFilter(repository.CapFilter{Name: "a.b*c"})

	re := filter["name"].(primitive.Regex)
	assert.Equal(t, `a\.b\*c`, re.Pattern)
}

// Ambos límites presentes → un único documento de rango inclusivo.
func TestBuildCapFilter_RangoDePrecioInclusivo(t *testing.T) {
	filter := buildCapFilter(repository.CapFilter{MinPrice: fptr(10), MaxPrice: fptr(50)})

	price, ok := filter["price"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, float64(10), price["$gte"])
	assert.Equal(t, float64(50), price["$lte"])
}

func TestBuildCapFilter_SoloPrecioMinimo(t *testing.T) {
	filter := buildCapFilter(repository.CapFilter{MinPrice: fptr(10)})

	price := filter["price"].(bson.M)
	assert.Equal(t, float64(10), price["$gte"])
	_, hasMax := price["$lte"]
	assert.False(t, hasMax, "el límite ausente queda abierto")
}

// q presente → OR sobre name/description/material y el filtro por name se ignora.
func TestBuildCapFilter_QueryTienePrecedenciaSobreName(t *testing.T) {
	filter := buildCapFilter(repository.CapFilter{Query: "cotton", Name: "Yankees"})

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok, "q debe producir un $or")
	require.Len(t, or, 3)

	_, hasName := filter["name"]
	assert.False(t, hasName, "con q el filtro simple por name no se aplica")

	fields := make(map[string]primitive.Regex, 3)
	for _, clause := range or {
		for k, v := range clause.(bson.M) {
			fields[k] = v.(primitive.Regex)
		}
	}
	for _, field := range []string{"name", "description", "material"} {
		re, ok := fields[field]
		require.True(t, ok, "el OR debe cubrir %s", field)
		assert.Equal(t, "cotton", re.Pattern)
		assert.Equal(t, "i", re.Options)
	}
}

func TestBuildCapFilter_CategoriaValida(t *testing.T) {
	oid := primitive.NewObjectID()
	filter := buildCapFilter(repository.CapFilter{CategoryID: oid.Hex()})
	assert.Equal(t, oid, filter["category"])
}

// Un hex inválido no es error: produce un filtro que no matchea nada.
func TestBuildCapFilter_CategoriaInvalidaProduceFiltroImposible(t *testing.T) {
	filter := buildCapFilter(repository.CapFilter{CategoryID: "no-es-un-objectid"})
	assert.Equal(t, primitive.NilObjectID, filter["category"])
}

func TestBuildCapFilter_SizeEsIgualdadEstricta(t *testing.T) {
	filter := buildCapFilter(repository.CapFilter{Size: "XL"})
	assert.Equal(t, "XL", filter["size"])
}

func TestBuildCapFilter_MaterialEsSubstring(t *testing.T) {
	filter := buildCapFilter(repository.CapFilter{Material: "wool"})

	re, ok := filter["material"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "wool", re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestBuildCapSort_SinCampoNoHayOrden(t *testing.T) {
	assert.Nil(t, buildCapSort("", "desc"))
}

func TestBuildCapSort_DescMapeaANegativo(t *testing.T) {
	sort := buildCapSort("price", "desc")
	require.Len(t, sort, 1)
	assert.Equal(t, "price", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
}

// Cualquier valor distinto de "desc" (incluido vacío o basura) es ascendente.
func TestBuildCapSort_DireccionPorDefectoEsAscendente(t *testing.T) {
	for _, dir := range []string{"", "asc", "ASC", "descending", "x"} {
		sort := buildCapSort("name", dir)
		require.Len(t, sort, 1)
		assert.Equal(t, 1, sort[0].Value, "sortDir=%q debe ser ascendente", dir)
	}
}

// El umbral es estricto: con threshold 5, stocks 0 y 3 entran y 5 y 7 quedan
// fuera; el operador debe ser $lt, nunca $lte.
func TestLowStockMatch_UmbralEstricto(t *testing.T) {
	match := lowStockMatch(5)

	require.Contains(t, match, "stock")
	cond, ok := match["stock"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{"$lt": 5, "$gte": 0}, cond)
	_, tieneLTE := cond["$lte"]
	assert.False(t, tieneLTE)
}

func TestCapLookupPipeline_OrdenDeEtapas(t *testing.T) {
	pipeline := capLookupPipeline(bson.M{"stock": 0}, bson.D{{Key: "name", Value: 1}}, 5)

	require.Len(t, pipeline, 5)
	assert.Equal(t, "$match", pipeline[0][0].Key)
	assert.Equal(t, "$sort", pipeline[1][0].Key)
	assert.Equal(t, "$limit", pipeline[2][0].Key)
	assert.Equal(t, "$lookup", pipeline[3][0].Key)
	assert.Equal(t, "$unwind", pipeline[4][0].Key)
}

func TestCapLookupPipeline_SinSortNiLimit(t *testing.T) {
	pipeline := capLookupPipeline(bson.M{}, nil, 0)

	require.Len(t, pipeline, 3)
	assert.Equal(t, "$match", pipeline[0][0].Key)
	assert.Equal(t, "$lookup", pipeline[1][0].Key)
	assert.Equal(t, "$unwind", pipeline[2][0].Key)
}
