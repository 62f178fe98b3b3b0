package asset

const VertexSource = `#version 410 core
	layout (location = 0) in vec3 aPos;
	layout (location = 1) in vec3 aNormal;
	uniform mat4 model;
	uniform mat4 view;
	uniform mat4 projection;
	out vec3 FragPos;
	out vec3 Normal;

	void main() {
		FragPos = vec3(model * vec4(aPos, 1.0));
		Normal = mat3(transpose(inverse(model))) * aNormal;
		gl_Position = projection * view * vec4(FragPos, 1.0);
	}
`

const FragmentSource = `#version 410 core
	struct Material {
		vec3 ambient;
		vec3 diffuse;
		vec3 specular;
		float shininess;
	};
	struct Light {
		vec3 position;
		vec3 ambient;
		vec3 diffuse;
		vec3 specular;
	};
	in vec3 FragPos;
	in vec3 Normal;
	uniform vec3 viewPos;
	uniform Material material;
	uniform Light light;
	out vec4 FragColor;

	void main() {
		vec3 ambient = 0.1 * light.ambient * material.ambient;

		vec3 norm = normalize(Normal);
		vec3 lightDir = normalize(light.position - FragPos);
		float diff = max(dot(norm, lightDir), 0.0);
		vec3 diffuse = light.diffuse * (diff * material.diffuse);

		vec3 viewDir = normalize(viewPos - FragPos);
		vec3 reflectDir = reflect(-lightDir, norm);
		float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);
		vec3 specular = light.specular * (spec * material.specular);

		FragColor = vec4(ambient + diffuse + specular, 1.0);
	}
`
