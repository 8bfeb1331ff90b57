package mapper_test

import (
	"net/url"
	"time"

	"object-mapper/mapper"
	"object-mapper/transform"
)

// Pet and Person exercise every field shape the engine binds; Node
// exercises self-referential declarations.

type Pet struct {
	Name string
	Kind string
}

func (p *Pet) MapFields(m *mapper.Mapper) {
	mapper.Field(m, "name", &p.Name)
	mapper.Field(m, "kind", &p.Kind)
}

type Person struct {
	Name     string
	Age      int
	Admin    bool
	Score    float64
	Nickname *string
	HeightCM float64
	Pet      Pet
	Mentor   *Person
	Tags     []string
	Aliases  []string
	Pets     []Pet
	Attrs    map[string]string
	Friends  map[string]Pet
	Birthday time.Time
	Updated  time.Time
	Site     *url.URL
	Visits   int
}

func (p *Person) MapFields(m *mapper.Mapper) {
	mapper.Field(m, "name", &p.Name)
	mapper.Field(m, "age", &p.Age)
	mapper.Field(m, "admin", &p.Admin)
	mapper.Field(m, "score", &p.Score)
	mapper.OptField(m, "nickname", &p.Nickname)
	mapper.Field(m, "height.value", &p.HeightCM)
	mapper.Object(m, "pet", &p.Pet)
	mapper.OptObject(m, "mentor", &p.Mentor)
	mapper.List(m, "tags", &p.Tags)
	mapper.OptList(m, "aliases", &p.Aliases)
	mapper.ObjectList(m, "pets", &p.Pets)
	mapper.Dict(m, "attrs", &p.Attrs)
	mapper.ObjectDict(m, "friends", &p.Friends)
	mapper.FieldWith(m, "birthday", &p.Birthday, transform.ISO8601(""))
	mapper.FieldWith(m, "updated", &p.Updated, transform.EpochSeconds())
	mapper.OptFieldWith(m, "site", &p.Site, transform.AbsoluteURL())
	mapper.FieldWith(m, "visits", &p.Visits, transform.StringInt())
}

type Node struct {
	Label    string
	Child    *Node
	Children map[string]Node
}

func (n *Node) MapFields(m *mapper.Mapper) {
	mapper.Field(m, "label", &n.Label)
	mapper.OptObject(m, "child", &n.Child)
	mapper.OptObjectDict(m, "children", &n.Children)
}

func samplePerson() Person {
	nick := "countess"
	site, _ := url.Parse("https://example.com/ada")

	return Person{
		Name:     "Ada",
		Age:      36,
		Admin:    true,
		Score:    99.5,
		Nickname: &nick,
		HeightCM: 180,
		Pet:      Pet{Name: "Rex", Kind: "dog"},
		Mentor:   &Person{Name: "Grace", Age: 85, Pet: Pet{Name: "Bit", Kind: "cat"}},
		Tags:     []string{"math", "engines"},
		Aliases:  []string{"aal"},
		Pets:     []Pet{{Name: "Rex", Kind: "dog"}, {Name: "Bit", Kind: "cat"}},
		Attrs:    map[string]string{"lang": "en", "era": "victorian"},
		Friends:  map[string]Pet{"grace": {Name: "Bit", Kind: "cat"}},
		Birthday: time.Date(1815, 12, 10, 9, 30, 0, 0, time.UTC),
		Updated:  time.Unix(946684800, 0).UTC(),
		Site:     site,
		Visits:   1234,
	}
}

const personText = `{
	"name": "Ada",
	"age": 36,
	"admin": true,
	"score": 99.5,
	"nickname": "countess",
	"height": {"value": 180, "text": "6 feet tall"},
	"pet": {"name": "Rex", "kind": "dog"},
	"mentor": {"name": "Grace", "age": 85, "pet": {"name": "Bit", "kind": "cat"}},
	"tags": ["math", "engines"],
	"aliases": ["aal"],
	"pets": [{"name": "Rex", "kind": "dog"}, {"name": "Bit", "kind": "cat"}],
	"attrs": {"lang": "en", "era": "victorian"},
	"friends": {"grace": {"name": "Bit", "kind": "cat"}},
	"birthday": "1815-12-10T09:30:00Z",
	"updated": 946684800,
	"site": "https://example.com/ada",
	"visits": "1234"
}`
