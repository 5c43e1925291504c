package main

var sceneVertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aTexCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 FragPos;
out vec3 Normal;
out vec2 TexCoord;

void main() {
	FragPos = vec3(model * vec4(aPos, 1.0));
	Normal = mat3(transpose(inverse(model))) * aNormal;
	TexCoord = aTexCoord;
	gl_Position = projection * view * vec4(FragPos, 1.0);
}
`

var sceneFragmentShader = `#version 410 core
#define NR_POINT_LIGHTS 5

struct Material {
	vec3 diffuseColor;
	vec3 specularColor;
	float shininess;
};

struct DirectionalLight {
	vec3 direction;
	vec3 ambient;
	vec3 diffuse;
	vec3 specular;
	bool bActive;
};

struct PointLight {
	vec3 position;
	vec3 ambient;
	vec3 diffuse;
	vec3 specular;
	bool bActive;
};

struct SpotLight {
	vec3 position;
	vec3 direction;
	float cutOff;
	float outerCutOff;
	vec3 ambient;
	vec3 diffuse;
	vec3 specular;
	bool bActive;
};

in vec3 FragPos;
in vec3 Normal;
in vec2 TexCoord;

out vec4 FragColor;

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec2 UVscale;
uniform vec3 viewPosition;
uniform Material material;
uniform DirectionalLight directionalLight;
uniform PointLight pointLights[NR_POINT_LIGHTS];
uniform SpotLight spotLight;

vec3 CalcDirectionalLight(DirectionalLight light, vec3 normal, vec3 viewDir, vec3 base) {
	vec3 lightDir = normalize(-light.direction);
	float diff = max(dot(normal, lightDir), 0.0);
	vec3 reflectDir = reflect(-lightDir, normal);
	float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);
	vec3 ambient = light.ambient * base;
	vec3 diffuse = light.diffuse * diff * material.diffuseColor * base;
	vec3 specular = light.specular * spec * material.specularColor;
	return ambient + diffuse + specular;
}

vec3 CalcPointLight(PointLight light, vec3 normal, vec3 fragPos, vec3 viewDir, vec3 base) {
	vec3 lightDir = normalize(light.position - fragPos);
	float diff = max(dot(normal, lightDir), 0.0);
	vec3 reflectDir = reflect(-lightDir, normal);
	float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);
	float distance = length(light.position - fragPos);
	float attenuation = 1.0 / (1.0 + 0.09 * distance + 0.032 * distance * distance);
	vec3 ambient = light.ambient * base;
	vec3 diffuse = light.diffuse * diff * material.diffuseColor * base;
	vec3 specular = light.specular * spec * material.specularColor;
	return (ambient + diffuse + specular) * attenuation;
}

vec3 CalcSpotLight(SpotLight light, vec3 normal, vec3 fragPos, vec3 viewDir, vec3 base) {
	vec3 lightDir = normalize(light.position - fragPos);
	float diff = max(dot(normal, lightDir), 0.0);
	vec3 reflectDir = reflect(-lightDir, normal);
	float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);
	float distance = length(light.position - fragPos);
	float attenuation = 1.0 / (1.0 + 0.09 * distance + 0.032 * distance * distance);
	float theta = dot(lightDir, normalize(-light.direction));
	float epsilon = light.cutOff - light.outerCutOff;
	float intensity = clamp((theta - light.outerCutOff) / epsilon, 0.0, 1.0);
	vec3 ambient = light.ambient * base;
	vec3 diffuse = light.diffuse * diff * material.diffuseColor * base;
	vec3 specular = light.specular * spec * material.specularColor;
	return (ambient + (diffuse + specular) * intensity) * attenuation;
}

void main() {
	vec4 baseColor = objectColor;
	if (bUseTexture) {
		baseColor = texture(objectTexture, TexCoord * UVscale);
	}

	if (!bUseLighting) {
		FragColor = baseColor;
		return;
	}

	vec3 norm = normalize(Normal);
	vec3 viewDir = normalize(viewPosition - FragPos);

	vec3 result = vec3(0.0);
	if (directionalLight.bActive) {
		result += CalcDirectionalLight(directionalLight, norm, viewDir, baseColor.rgb);
	}
	for (int i = 0; i < NR_POINT_LIGHTS; i++) {
		if (pointLights[i].bActive) {
			result += CalcPointLight(pointLights[i], norm, FragPos, viewDir, baseColor.rgb);
		}
	}
	if (spotLight.bActive) {
		result += CalcSpotLight(spotLight, norm, FragPos, viewDir, baseColor.rgb);
	}

	FragColor = vec4(result, baseColor.a);
}
`
