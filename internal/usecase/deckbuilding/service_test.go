package deckbuilding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"mtgBot/internal/domain"
	mock_domain "mtgBot/internal/mocks/domain"
)

type fixedPicker int

func (p fixedPicker) IntN(n int) int {
	return int(p) % n
}

func TestService_Commander(t *testing.T) {
	tests := []struct {
		name        string
		page        domain.CommanderPage
		picker      fixedPicker
		wantSimilar string
	}{
		{
			name: "picks similar commander",
			page: domain.CommanderPage{
				DeckListURI: "https://moxfield.com/commanders/atraxa",
				Similar: []domain.SimilarCommander{
					{Name: "Vorinclex", DeckListURI: "https://moxfield.com/commanders/vorinclex"},
					{Name: "Ezuri", DeckListURI: "https://moxfield.com/commanders/ezuri"},
				},
			},
			picker:      1,
			wantSimilar: "https://moxfield.com/commanders/ezuri",
		},
		{
			name:   "no similar commanders",
			page:   domain.CommanderPage{DeckListURI: "https://moxfield.com/commanders/atraxa"},
			picker: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			provider := mock_domain.NewMockDeckDataProvider(ctrl)
			provider.EXPECT().CommanderPage(gomock.Any(), "Atraxa").Return(tt.page, nil)

			svc := NewService(provider, tt.picker, Config{SiteURL: "https://edhrec.com"})
			got, err := svc.Commander(context.Background(), "Atraxa")
			require.NoError(t, err)
			assert.Equal(t, "Atraxa", got.Commander)
			assert.Equal(t, tt.page.DeckListURI, got.DeckListURI)
			assert.Equal(t, tt.wantSimilar, got.SimilarDeckListURI)
		})
	}
}

func TestService_Commander_PickedSimilarWithoutLink(t *testing.T) {
	page := domain.CommanderPage{
		DeckListURI: "https://moxfield.com/commanders/atraxa",
		Similar: []domain.SimilarCommander{
			{Name: "Vorinclex", DeckListURI: "https://moxfield.com/commanders/vorinclex"},
			{Name: "Ezuri"},
		},
	}

	tests := []struct {
		name    string
		picker  fixedPicker
		want    string
		wantErr bool
	}{
		{name: "linked entry", picker: 0, want: "https://moxfield.com/commanders/vorinclex"},
		{name: "entry without link", picker: 1, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			provider := mock_domain.NewMockDeckDataProvider(ctrl)
			provider.EXPECT().CommanderPage(gomock.Any(), "Atraxa").Return(page, nil)

			svc := NewService(provider, tt.picker, Config{})
			got, err := svc.Commander(context.Background(), "Atraxa")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrMalformedResponse))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.SimilarDeckListURI)
		})
	}
}

func TestService_Commander_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_domain.NewMockDeckDataProvider(ctrl)
	provider.EXPECT().CommanderPage(gomock.Any(), "Nobody").
		Return(domain.CommanderPage{}, domain.NewNotFoundError("edhrec", 404, nil))

	svc := NewService(provider, fixedPicker(0), Config{})
	_, err := svc.Commander(context.Background(), "Nobody")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestTopSynergy(t *testing.T) {
	tests := []struct {
		name  string
		lists []domain.CardList
		want  []string
	}{
		{
			name: "filters threshold and sorts descending",
			lists: []domain.CardList{
				{Header: "Creatures", Cards: []domain.CardView{
					{Name: "low", Synergy: 0.2},
					{Name: "mid", Synergy: 0.7},
					{Name: "high", Synergy: 0.9},
					{Name: "edge", Synergy: 0.65},
					{Name: "below edge", Synergy: 0.649},
				}},
			},
			want: []string{"high", "mid", "edge"},
		},
		{
			name: "caps five per group and keeps group order",
			lists: []domain.CardList{
				{Header: "A", Cards: []domain.CardView{
					{Name: "a1", Synergy: 0.99}, {Name: "a2", Synergy: 0.98}, {Name: "a3", Synergy: 0.97},
					{Name: "a4", Synergy: 0.96}, {Name: "a5", Synergy: 0.95}, {Name: "a6", Synergy: 0.94},
				}},
				{Header: "B", Cards: []domain.CardView{
					{Name: "b1", Synergy: 0.66},
				}},
			},
			want: []string{"a1", "a2", "a3", "a4", "a5", "b1"},
		},
		{
			name: "ties keep provider order",
			lists: []domain.CardList{
				{Header: "A", Cards: []domain.CardView{
					{Name: "first", Synergy: 0.8}, {Name: "better", Synergy: 0.9}, {Name: "second", Synergy: 0.8},
				}},
			},
			want: []string{"better", "first", "second"},
		},
		{
			name:  "nothing qualifies",
			lists: []domain.CardList{{Header: "A", Cards: []domain.CardView{{Name: "x", Synergy: 0.1}}}},
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TopSynergy(tt.lists))
		})
	}
}

func TestTopSynergy_DoesNotReorderInput(t *testing.T) {
	cards := []domain.CardView{{Name: "a", Synergy: 0.7}, {Name: "b", Synergy: 0.9}}
	TopSynergy([]domain.CardList{{Cards: cards}})
	assert.Equal(t, "a", cards[0].Name)
}

func TestService_Recommendations(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_domain.NewMockDeckDataProvider(ctrl)
	provider.EXPECT().CommanderPage(gomock.Any(), "Atraxa").Return(domain.CommanderPage{
		CardLists: []domain.CardList{{Cards: []domain.CardView{{Name: "Doubling Season", Synergy: 0.8}}}},
	}, nil)

	svc := NewService(provider, fixedPicker(0), Config{})
	got, err := svc.Recommendations(context.Background(), "Atraxa")
	require.NoError(t, err)
	assert.Equal(t, domain.RecommendationList{Commander: "Atraxa", Names: []string{"Doubling Season"}}, got)
}

func TestService_Combos_LinkForEveryChoice(t *testing.T) {
	page := domain.ComboPage{
		Header: "Combos for Atraxa",
		Combos: []domain.ComboGroup{
			{Header: "Combo one", Href: "/combos/atraxa/1"},
			{Header: "Combo two", Href: "/combos/atraxa/2"},
			{Header: "Combo three", Href: "/combos/atraxa/3"},
		},
		AllCombosPath: "/combos/atraxa",
	}

	for i, combo := range page.Combos {
		ctrl := gomock.NewController(t)
		provider := mock_domain.NewMockDeckDataProvider(ctrl)
		provider.EXPECT().ComboPage(gomock.Any(), "Atraxa").Return(page, nil)

		svc := NewService(provider, fixedPicker(i), Config{SiteURL: "https://edhrec.com/"})
		got, err := svc.Combos(context.Background(), "Atraxa")
		require.NoError(t, err)
		assert.Equal(t, 3, got.Total)
		assert.Equal(t, combo.Header, got.ComboName)
		assert.Equal(t, "https://edhrec.com"+combo.Href, got.ComboURL)
		assert.Equal(t, "https://edhrec.com/combos/atraxa", got.AllCombosURL)
	}
}

func TestService_Combos_UsesPicker(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_domain.NewMockDeckDataProvider(ctrl)
	picker := mock_domain.NewMockPicker(ctrl)
	provider.EXPECT().ComboPage(gomock.Any(), "Atraxa").Return(domain.ComboPage{
		Combos:        []domain.ComboGroup{{Header: "a", Href: "/a"}, {Header: "b", Href: "/b"}},
		AllCombosPath: "/combos/atraxa",
	}, nil)
	picker.EXPECT().IntN(2).Return(1)

	svc := NewService(provider, picker, Config{SiteURL: "https://edhrec.com"})
	got, err := svc.Combos(context.Background(), "Atraxa")
	require.NoError(t, err)
	assert.Equal(t, "b", got.ComboName)
}

func TestService_Combos_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_domain.NewMockDeckDataProvider(ctrl)
	provider.EXPECT().ComboPage(gomock.Any(), "Atraxa").Return(domain.ComboPage{Header: "Combos"}, nil)

	svc := NewService(provider, fixedPicker(0), Config{SiteURL: "https://edhrec.com"})
	got, err := svc.Combos(context.Background(), "Atraxa")
	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestService_Combos_MissingBreadcrumb(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_domain.NewMockDeckDataProvider(ctrl)
	provider.EXPECT().ComboPage(gomock.Any(), "Atraxa").Return(domain.ComboPage{
		Combos: []domain.ComboGroup{{Header: "a", Href: "/a"}},
	}, nil)

	svc := NewService(provider, fixedPicker(0), Config{SiteURL: "https://edhrec.com"})
	_, err := svc.Combos(context.Background(), "Atraxa")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedResponse))
}

func TestService_CardDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_domain.NewMockDeckDataProvider(ctrl)
	provider.EXPECT().CardDetails(gomock.Any(), "sol ring").Return(domain.CardDetails{
		Link:       "https://edhrec.com/cards/sol-ring",
		OracleText: "{T}: Add {C}{C}.",
	}, nil)

	svc := NewService(provider, fixedPicker(0), Config{})
	got, err := svc.CardDetails(context.Background(), "sol ring")
	require.NoError(t, err)
	assert.Equal(t, "sol ring", got.Name)
	assert.Equal(t, "{T}: Add {C}{C}.", got.OracleText)
}
